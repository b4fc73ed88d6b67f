package mapgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads the mapping source workbook at path and returns the validated
// records in row order. The whole load fails on the first invalid row.
func Load(path string, opts Options) ([]MappingRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, &ReadError{Path: path, Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	rawRows, err := readRows(f, path, opts.Sheet)
	if err != nil {
		return nil, err
	}

	records := make([]MappingRecord, 0, len(rawRows))
	seenNames := make(map[string]struct{})
	seenSources := make(map[string]struct{})

	for _, row := range rawRows {
		record, err := recordFromRow(row, opts.Profile)
		if err != nil {
			return nil, err
		}

		nameKey := record.PSet + "\x00" + strings.ToLower(record.Name)
		if _, ok := seenNames[nameKey]; ok {
			return nil, newValidationError(record.PSet, record.Name, ColumnName,
				"duplicate IFC property %q", record.Name)
		}
		seenNames[nameKey] = struct{}{}

		sourceKey := record.PSet + "\x00" + strings.ToLower(record.Source)
		if _, ok := seenSources[sourceKey]; ok {
			return nil, newValidationError(record.PSet, record.Name, ColumnSource,
				"duplicate Civil 3D source %q", record.Source)
		}
		seenSources[sourceKey] = struct{}{}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// readRows reads the selected sheet, aliases the header row to canonical
// column names, and returns the data rows keyed by canonical column.
// Rows blank across every required column are skipped.
func readRows(f *excelize.File, path, sheet string) ([]RawRow, error) {
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Missing: RequiredColumns}
	}

	// Map canonical column name to its position. First occurrence wins.
	columns := make(map[string]int)
	for idx, header := range rows[0] {
		name := strings.TrimSpace(header)
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}
		if _, ok := columns[name]; !ok {
			columns[name] = idx
		}
	}

	var missing []string
	for _, required := range RequiredColumns {
		if _, ok := columns[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var rawRows []RawRow
	for _, cells := range rows[1:] {
		row := make(RawRow, len(RequiredColumns))
		blank := true
		for _, column := range RequiredColumns {
			value := ""
			if idx := columns[column]; idx < len(cells) {
				value = strings.TrimSpace(cells[idx])
			}
			row[column] = value
			if value != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rawRows = append(rawRows, row)
	}

	return rawRows, nil
}
