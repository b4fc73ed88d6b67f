// Package mapgen turns an Excel mapping source into validated IFC
// property-set configuration artifacts.
package mapgen

// Profile selects between the two supported export tool variants.
type Profile string

const (
	// ProfileCivil substitutes a default measure type for empty type cells,
	// applies name corrections to both the property and source columns, and
	// writes the auxiliary version/export documents.
	ProfileCivil Profile = "civil"
	// ProfileInfra validates measure types against a closed allow-list,
	// corrects property names only, and renames the mirrored files to the
	// IfcInfraExport configuration layout.
	ProfileInfra Profile = "infra"
)

// Options configures loading and generation behavior.
type Options struct {
	// Sheet is the workbook sheet to read. Empty selects the first sheet.
	Sheet string
	// Profile specifies the variant policy (civil, infra).
	Profile Profile
	// SkipOptional suppresses the auxiliary JSON documents.
	// Only meaningful for the civil profile; infra never writes them.
	SkipOptional bool
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Profile: ProfileCivil,
	}
}

// CSVHeader returns the flat-table column header for the profile.
func (p Profile) CSVHeader() []string {
	if p == ProfileInfra {
		return []string{"PSet", "IFCName", "IsActive", "Group", "CivilSource"}
	}
	return []string{"PSet", "Name", "Attivo", "Gruppo", "Source"}
}

// MirrorName returns the filename a produced file takes inside the
// configuration directory.
func (p Profile) MirrorName(produced string) string {
	if p != ProfileInfra {
		return produced
	}
	switch produced {
	case JSONFileName:
		return "IfcInfraExportPropertyMapping.json"
	case CSVFileName:
		return "IfcInfraExportPropertyMapping.csv"
	}
	return produced
}

// correctsSource reports whether name corrections also apply to the
// source-attribute column.
func (p Profile) correctsSource() bool {
	return p != ProfileInfra
}

// writesOptional reports whether the auxiliary documents are produced.
func (o Options) writesOptional() bool {
	return o.Profile != ProfileInfra && !o.SkipOptional
}
