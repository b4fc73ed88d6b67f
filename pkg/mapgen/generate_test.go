package mapgen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CivilProfile(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "mapping")
	configDir := filepath.Join(t.TempDir(), "IfcInfraExportConfiguration")

	result, err := Generate(sampleRecords(), "mapping/mapping_source.xlsx", outputDir, configDir, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, result.Produced, 4, "json, csv and the two auxiliary documents")
	require.Len(t, result.Mirrored, 4)

	data, err := os.ReadFile(filepath.Join(outputDir, JSONFileName))
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "mapping_source.xlsx", doc.Source)
	require.Len(t, doc.PropertySetTemplates, 2)
	assert.Equal(t, "Pset_Alignment", doc.PropertySetTemplates[0].Name)

	csvData, err := os.ReadFile(filepath.Join(outputDir, CSVFileName))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(csvData), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "PSet,Name,Attivo,Gruppo,Source", lines[0])

	// Mirrored copies keep their names and are byte-identical.
	for _, produced := range result.Produced {
		mirrored := filepath.Join(configDir, filepath.Base(produced))
		mirroredData, err := os.ReadFile(mirrored)
		require.NoError(t, err)
		producedData, err := os.ReadFile(produced)
		require.NoError(t, err)
		assert.Equal(t, producedData, mirroredData)
	}
}

func TestGenerate_InfraProfile(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "mapping")
	configDir := filepath.Join(t.TempDir(), "config")

	opts := Options{Profile: ProfileInfra}
	result, err := Generate(sampleRecords(), "mapping_source.xlsx", outputDir, configDir, opts)
	require.NoError(t, err)

	assert.Len(t, result.Produced, 2, "no auxiliary documents under infra")

	assert.FileExists(t, filepath.Join(configDir, "IfcInfraExportPropertyMapping.json"))
	assert.FileExists(t, filepath.Join(configDir, "IfcInfraExportPropertyMapping.csv"))
	assert.NoFileExists(t, filepath.Join(outputDir, VersionFileName))

	csvData, err := os.ReadFile(filepath.Join(outputDir, CSVFileName))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csvData), "PSet,IFCName,IsActive,Group,CivilSource\n"))
}

func TestGenerate_SkipOptional(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "mapping")
	configDir := filepath.Join(t.TempDir(), "config")

	opts := DefaultOptions()
	opts.SkipOptional = true
	result, err := Generate(sampleRecords(), "mapping_source.xlsx", outputDir, configDir, opts)
	require.NoError(t, err)

	assert.Len(t, result.Produced, 2)
	assert.NoFileExists(t, filepath.Join(outputDir, VersionFileName))
	assert.NoFileExists(t, filepath.Join(outputDir, ExportConfigFileName))
}

func TestGenerate_SameOutputAndConfigDir(t *testing.T) {
	dir := t.TempDir()

	result, err := Generate(sampleRecords(), "mapping_source.xlsx", dir, dir, DefaultOptions())
	require.NoError(t, err)

	// Self-copies are skipped, the produced files remain in place.
	for _, produced := range result.Produced {
		assert.FileExists(t, produced)
	}
	assert.Len(t, result.Mirrored, len(result.Produced))
}

func TestGenerate_DeterministicModuloTimestamp(t *testing.T) {
	outputDir1 := filepath.Join(t.TempDir(), "a")
	outputDir2 := filepath.Join(t.TempDir(), "b")
	configDir := t.TempDir()

	opts := DefaultOptions()
	opts.SkipOptional = true

	_, err := Generate(sampleRecords(), "mapping_source.xlsx", outputDir1, configDir, opts)
	require.NoError(t, err)
	_, err = Generate(sampleRecords(), "mapping_source.xlsx", outputDir2, configDir, opts)
	require.NoError(t, err)

	stripTimestamp := func(path string) string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var lines []string
		for _, line := range strings.Split(string(data), "\n") {
			if strings.Contains(line, "GeneratedOn") {
				continue
			}
			lines = append(lines, line)
		}
		return strings.Join(lines, "\n")
	}

	assert.Equal(t,
		stripTimestamp(filepath.Join(outputDir1, JSONFileName)),
		stripTimestamp(filepath.Join(outputDir2, JSONFileName)))

	csv1, err := os.ReadFile(filepath.Join(outputDir1, CSVFileName))
	require.NoError(t, err)
	csv2, err := os.ReadFile(filepath.Join(outputDir2, CSVFileName))
	require.NoError(t, err)
	assert.Equal(t, csv1, csv2)
}
