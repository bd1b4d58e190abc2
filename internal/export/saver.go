package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// Saver writes rows to a file.
type Saver interface {
	Save(rows []Row, path string) error
}

// NewSaver returns the Saver for format (csv, parquet, json), or nil.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}

// ForPath picks the Saver matching path's extension.
func ForPath(path string) (Saver, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	s := NewSaver(ext)
	if s == nil {
		return nil, fmt.Errorf("export: unsupported format %q (use csv, parquet or json)", ext)
	}
	return s, nil
}

// WriteFile saves summaries to path using the format implied by its extension.
func WriteFile(path string, in []models.Summary) error {
	s, err := ForPath(path)
	if err != nil {
		return err
	}
	if err := s.Save(Rows(in), path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
