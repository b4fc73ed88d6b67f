package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ifcmapgen/pkg/mapgen/output"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "table.csv")

	header := []string{"PSet", "Name", "Attivo", "Gruppo", "Source"}
	rows := [][]string{
		{"Pset_Wall", "FireRating", "TRUE", "Pset_Wall", "Fire Rating"},
		{"Pset_Wall", "Width", "TRUE", "Pset_Wall", "Wall Width"},
	}
	require.NoError(t, output.WriteCSV(header, rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"PSet,Name,Attivo,Gruppo,Source\n"+
			"Pset_Wall,FireRating,TRUE,Pset_Wall,Fire Rating\n"+
			"Pset_Wall,Width,TRUE,Pset_Wall,Wall Width\n",
		string(data))
}

func TestWriteCSV_NoRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")

	err := output.WriteCSV([]string{"PSet"}, nil, path)
	assert.ErrorIs(t, err, output.ErrNoData)
	assert.NoFileExists(t, path, "nothing written on error")
}
