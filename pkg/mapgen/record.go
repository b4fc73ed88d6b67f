package mapgen

import "strings"

// RawRow maps a canonical column name to the trimmed cell text of one
// spreadsheet row. Produced by the loader after header aliasing; missing
// cells appear as empty strings.
type RawRow map[string]string

// MappingRecord is the normalized representation of one validated row.
type MappingRecord struct {
	// PSet is the property-set (group) name the property belongs to.
	PSet string
	// Name is the IFC property name, post name-correction.
	Name string
	// Source is the Civil 3D attribute the property is read from.
	Source string
	// Type is the IFC measure-type token.
	Type string
	// Entities lists the applicable IFC entity names, deduplicated, in the
	// order they appear in the cell.
	Entities []string
}

// entitySeparators are the delimiters accepted in the entities cell.
// "/" is folded into the set before splitting.
var entitySeparators = []string{";", ",", "\n"}

// recordFromRow validates and normalizes a single raw row. Rules apply in
// order: required-field presence, name corrections, type policy, entity
// parsing. The first violation aborts with a ValidationError.
func recordFromRow(row RawRow, profile Profile) (MappingRecord, error) {
	pset := strings.TrimSpace(row[ColumnPSet])
	if pset == "" {
		return MappingRecord{}, newValidationError("", "", ColumnPSet, "PSet column contains empty value")
	}

	name := correctName(strings.TrimSpace(row[ColumnName]))
	if name == "" {
		return MappingRecord{}, newValidationError(pset, "", ColumnName, "missing IFC property name")
	}

	source := strings.TrimSpace(row[ColumnSource])
	if profile.correctsSource() {
		source = correctName(source)
	}
	if source == "" {
		return MappingRecord{}, newValidationError(pset, name, ColumnSource, "missing Civil 3D source")
	}

	measureType := strings.TrimSpace(row[ColumnType])
	if profile == ProfileInfra {
		if measureType == "" {
			return MappingRecord{}, newValidationError(pset, name, ColumnType, "missing IFC measure type")
		}
		if _, ok := knownMeasureTypes[measureType]; !ok {
			return MappingRecord{}, newValidationError(pset, name, ColumnType, "unknown IFC measure type %q", measureType)
		}
	} else if measureType == "" {
		measureType = DefaultMeasureType
	}

	entities := splitEntities(row[ColumnEntities])
	if len(entities) == 0 {
		return MappingRecord{}, newValidationError(pset, name, ColumnEntities, "missing IFC entities")
	}

	return MappingRecord{
		PSet:     pset,
		Name:     name,
		Source:   source,
		Type:     measureType,
		Entities: entities,
	}, nil
}

func correctName(name string) string {
	if fixed, ok := nameCorrections[name]; ok {
		return fixed
	}
	return name
}

// splitEntities parses a delimited entities cell into a deduplicated,
// order-preserving list. Empty fragments are dropped.
func splitEntities(text string) []string {
	normalized := strings.ReplaceAll(text, "/", entitySeparators[0])
	for _, sep := range entitySeparators[1:] {
		normalized = strings.ReplaceAll(normalized, sep, entitySeparators[0])
	}

	var entities []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(normalized, entitySeparators[0]) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		entities = append(entities, part)
	}
	return entities
}
