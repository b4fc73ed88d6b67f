package mapgen

import (
	"sort"
	"strings"
)

// PropertyTemplate is the per-property payload inside a property-set
// template.
type PropertyTemplate struct {
	// Name is the IFC property name.
	Name string `json:"Name"`
	// Description is reserved for future use and always empty.
	Description string `json:"Description"`
	// PrimaryMeasureType is the IFC measure-type token.
	PrimaryMeasureType string `json:"PrimaryMeasureType"`
	// Source is the Civil 3D attribute the value is read from.
	Source string `json:"Source"`
}

// PropertySetTemplate aggregates every mapping record sharing a PSet key.
type PropertySetTemplate struct {
	// Name is the property-set name.
	Name string `json:"Name"`
	// ApplicableEntities is the sorted, deduplicated, ";"-joined union of
	// the entity names referenced by the member properties.
	ApplicableEntities string `json:"ApplicableEntities"`
	// TemplateType is the IFC template-type marker.
	TemplateType string `json:"TemplateType"`
	// PropertyTemplates lists the member properties, sorted
	// case-insensitively by name.
	PropertyTemplates []PropertyTemplate `json:"PropertyTemplates"`
}

// CSVRow is one line of the flat property table.
type CSVRow struct {
	PSet   string
	Name   string
	Active string
	Group  string
	Source string
}

// Fields returns the row values in the fixed output column order.
func (r CSVRow) Fields() []string {
	return []string{r.PSet, r.Name, r.Active, r.Group, r.Source}
}

// BuildPropertySets groups the records by PSet and produces the property-set
// templates (sorted by set name) together with the flat CSV rows.
func BuildPropertySets(records []MappingRecord) ([]PropertySetTemplate, []CSVRow) {
	grouped := make(map[string][]MappingRecord)
	keys := make([]string, 0)
	for _, record := range records {
		if _, ok := grouped[record.PSet]; !ok {
			keys = append(keys, record.PSet)
		}
		grouped[record.PSet] = append(grouped[record.PSet], record)
	}
	sort.Strings(keys)

	templates := make([]PropertySetTemplate, 0, len(keys))
	var csvRows []CSVRow

	for _, pset := range keys {
		members := grouped[pset]
		sort.SliceStable(members, func(i, j int) bool {
			return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
		})

		entitySet := make(map[string]struct{})
		for _, record := range members {
			for _, entity := range record.Entities {
				entitySet[entity] = struct{}{}
			}
		}
		entities := make([]string, 0, len(entitySet))
		for entity := range entitySet {
			entities = append(entities, entity)
		}
		sort.Strings(entities)

		properties := make([]PropertyTemplate, 0, len(members))
		for _, record := range members {
			properties = append(properties, PropertyTemplate{
				Name:               record.Name,
				PrimaryMeasureType: record.Type,
				Source:             record.Source,
			})
			csvRows = append(csvRows, CSVRow{
				PSet:   pset,
				Name:   record.Name,
				Active: "TRUE",
				Group:  pset,
				Source: record.Source,
			})
		}

		templates = append(templates, PropertySetTemplate{
			Name:               pset,
			ApplicableEntities: strings.Join(entities, ";"),
			TemplateType:       "NOTDEFINED",
			PropertyTemplates:  properties,
		})
	}

	return templates, csvRows
}
