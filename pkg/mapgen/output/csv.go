package output

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
)

// ErrNoData indicates there were no rows to write.
var ErrNoData = errors.New("no rows available to write CSV output")

// WriteCSV writes a header line followed by one line per row, in the fixed
// column order given by header. Parent directories are created; an existing
// file is overwritten. An empty row set is an error.
func WriteCSV(header []string, rows [][]string, path string) error {
	if len(rows) == 0 {
		return ErrNoData
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
