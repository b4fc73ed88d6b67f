// Package output serializes mapping artifacts and mirrors them into the
// export tool's configuration directory.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteJSON writes v to path as UTF-8 JSON with 2-space indentation and a
// single trailing newline. Non-ASCII characters are emitted literally.
// Parent directories are created; an existing file is overwritten.
func WriteJSON(v any, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
