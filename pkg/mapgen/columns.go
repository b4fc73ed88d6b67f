package mapgen

// Canonical column names required in the mapping source after aliasing.
const (
	ColumnPSet     = "PSet"
	ColumnName     = "Name"
	ColumnSource   = "Source"
	ColumnType     = "Type"
	ColumnEntities = "Entities"
)

// RequiredColumns lists the columns every mapping source must provide,
// in canonical order.
var RequiredColumns = []string{
	ColumnPSet,
	ColumnName,
	ColumnSource,
	ColumnType,
	ColumnEntities,
}

// columnAliases maps legacy and localized header spellings to canonical
// column names. Applied before the required-column check.
var columnAliases = map[string]string{
	"Nome_IFC":           ColumnName,
	"Parametro IFC":      ColumnName,
	"IFC":                ColumnName,
	"Nome_Civil":         ColumnSource,
	"Parametro Civil":    ColumnSource,
	"Parametro Civil 3D": ColumnSource,
	"Tipo_IFC":           ColumnType,
	"Tipo IFC":           ColumnType,
	"Entita_IFC":         ColumnEntities,
	"Entità_IFC":         ColumnEntities,
	"Entità IFC":         ColumnEntities,
}

// nameCorrections fixes known typos that appear in maintained sources.
var nameCorrections = map[string]string{
	"CordhLength":     "ChordLength",
	"Insulation Type": "InsulationType",
}

// DefaultMeasureType is substituted for an empty type cell under the
// civil profile.
const DefaultMeasureType = "IfcLabel"

// knownMeasureTypes is the closed allow-list enforced by the infra profile.
var knownMeasureTypes = map[string]struct{}{
	"IfcLabel":                       {},
	"IfcText":                        {},
	"IfcIdentifier":                  {},
	"IfcBoolean":                     {},
	"IfcLogical":                     {},
	"IfcInteger":                     {},
	"IfcReal":                        {},
	"IfcCountMeasure":                {},
	"IfcLengthMeasure":               {},
	"IfcPositiveLengthMeasure":       {},
	"IfcAreaMeasure":                 {},
	"IfcVolumeMeasure":               {},
	"IfcMassMeasure":                 {},
	"IfcPlaneAngleMeasure":           {},
	"IfcThermalTransmittanceMeasure": {},
	"IfcDate":                        {},
	"IfcDateTime":                    {},
}
