package mapgen

import (
	"path/filepath"
	"time"

	"ifcmapgen/pkg/mapgen/output"
)

// Result lists the files written by Generate.
type Result struct {
	// Produced are the paths written to the output directory, in write order.
	Produced []string
	// Mirrored are the paths of the copies placed in the configuration
	// directory. A skipped self-copy still appears here.
	Mirrored []string
}

// Generate aggregates the records, writes the mapping artifacts into
// outputDir and mirrors every produced file into configDir. Nothing is
// written if any step fails.
func Generate(records []MappingRecord, sourcePath, outputDir, configDir string, opts Options) (*Result, error) {
	templates, csvRows := BuildPropertySets(records)
	now := time.Now()

	doc := NewDocument(filepath.Base(sourcePath), templates, now)
	jsonPath := filepath.Join(outputDir, JSONFileName)
	if err := output.WriteJSON(doc, jsonPath); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(csvRows))
	for _, row := range csvRows {
		rows = append(rows, row.Fields())
	}
	csvPath := filepath.Join(outputDir, CSVFileName)
	if err := output.WriteCSV(opts.Profile.CSVHeader(), rows, csvPath); err != nil {
		return nil, err
	}

	result := &Result{Produced: []string{jsonPath, csvPath}}

	if opts.writesOptional() {
		version := NewVersionInfo(filepath.Base(sourcePath), len(records), len(templates), now)
		versionPath := filepath.Join(outputDir, VersionFileName)
		if err := output.WriteJSON(version, versionPath); err != nil {
			return nil, err
		}

		exportConfig := NewExportConfig(filepath.Base(configDir), templates)
		configPath := filepath.Join(outputDir, ExportConfigFileName)
		if err := output.WriteJSON(exportConfig, configPath); err != nil {
			return nil, err
		}

		result.Produced = append(result.Produced, versionPath, configPath)
	}

	for _, produced := range result.Produced {
		name := opts.Profile.MirrorName(filepath.Base(produced))
		mirrored, err := output.Mirror(produced, configDir, name)
		if err != nil {
			return nil, err
		}
		result.Mirrored = append(result.Mirrored, mirrored)
	}

	return result, nil
}
