package mapgen

import "time"

// Filenames produced in the output directory.
const (
	JSONFileName         = "mapping_validated.json"
	CSVFileName          = "mapping_validated.csv"
	VersionFileName      = "mapping_version.json"
	ExportConfigFileName = "export_config.json"
)

// Document is the root JSON artifact consumed by the export pipeline.
type Document struct {
	// GeneratedOn is the UTC generation timestamp at second precision.
	GeneratedOn string `json:"GeneratedOn"`
	// Source is the mapping source file name (no path).
	Source string `json:"Source"`
	// PropertySetTemplates lists the aggregated sets, sorted by name.
	PropertySetTemplates []PropertySetTemplate `json:"PropertySetTemplates"`
}

// NewDocument assembles the root document for the given source file name.
func NewDocument(sourceName string, templates []PropertySetTemplate, now time.Time) Document {
	return Document{
		GeneratedOn:          timestamp(now),
		Source:               sourceName,
		PropertySetTemplates: templates,
	}
}

// VersionInfo is the auxiliary document summarizing the mapping revision.
type VersionInfo struct {
	SchemaVersion    string `json:"SchemaVersion"`
	GeneratedOn      string `json:"GeneratedOn"`
	Source           string `json:"Source"`
	RecordCount      int    `json:"RecordCount"`
	PropertySetCount int    `json:"PropertySetCount"`
}

// ExportConfig is the auxiliary document describing the produced
// configuration files.
type ExportConfig struct {
	ConfigurationName string   `json:"ConfigurationName"`
	MappingFile       string   `json:"MappingFile"`
	TableFile         string   `json:"TableFile"`
	PropertySets      []string `json:"PropertySets"`
}

// NewVersionInfo builds the version summary for the generated mapping.
func NewVersionInfo(sourceName string, recordCount, setCount int, now time.Time) VersionInfo {
	return VersionInfo{
		SchemaVersion:    "1.0",
		GeneratedOn:      timestamp(now),
		Source:           sourceName,
		RecordCount:      recordCount,
		PropertySetCount: setCount,
	}
}

// NewExportConfig builds the export configuration summary.
func NewExportConfig(configName string, templates []PropertySetTemplate) ExportConfig {
	names := make([]string, 0, len(templates))
	for _, template := range templates {
		names = append(names, template.Name)
	}
	return ExportConfig{
		ConfigurationName: configName,
		MappingFile:       JSONFileName,
		TableFile:         CSVFileName,
		PropertySets:      names,
	}
}

func timestamp(now time.Time) string {
	return now.UTC().Truncate(time.Second).Format(time.RFC3339)
}
