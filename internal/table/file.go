package table

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile persists the table to path as a flat sequence of 5-byte
// records, creating parent directories as needed. The format is exactly
// the in-memory layout, so Load is a straight read.
func (t *Table) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create table directory: %w", err)
	}
	if err := os.WriteFile(path, t.data, 0644); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// Load reads a persisted table from path. A file whose size is not exactly
// FileSize is rejected with ErrCorrupt: a short or padded table must never
// be used as if it were complete.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	if len(data) != FileSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrCorrupt, len(data), FileSize)
	}
	return &Table{data: data}, nil
}
