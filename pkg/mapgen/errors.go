package mapgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the mapping source file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrNoRecords indicates the source contained no valid mapping rows.
var ErrNoRecords = errors.New("source does not contain any valid mapping rows")

// ReadError represents a failure of the underlying spreadsheet engine.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read workbook %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// SchemaError indicates required columns are absent after header aliasing.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns in mapping source: " + strings.Join(e.Missing, ", ")
}

// ValidationError represents a per-row rule violation. PSet, Property and
// Column carry whatever context is known at the point of failure.
type ValidationError struct {
	PSet     string
	Property string
	Column   string
	Reason   string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Reason)
	if e.Property != "" {
		fmt.Fprintf(&b, " for property %q", e.Property)
	}
	if e.PSet != "" {
		fmt.Fprintf(&b, " in PSet %q", e.PSet)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " (column %s)", e.Column)
	}
	return b.String()
}

func newValidationError(pset, property, column, format string, args ...any) *ValidationError {
	return &ValidationError{
		PSet:     pset,
		Property: property,
		Column:   column,
		Reason:   fmt.Sprintf(format, args...),
	}
}
