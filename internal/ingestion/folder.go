package ingestion

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/guttosm/cryptopulse/internal/apperr"
)

// DefaultFileSuffix is appended to an asset code to form its file name
// (e.g., "BTC_values.csv").
const DefaultFileSuffix = "_values.csv"

// Folder enumerates and opens per-asset price files in one directory.
type Folder struct {
	dir    string
	suffix string
}

// NewFolder returns a Folder rooted at dir. An empty suffix uses DefaultFileSuffix.
func NewFolder(dir, suffix string) *Folder {
	if suffix == "" {
		suffix = DefaultFileSuffix
	}
	return &Folder{dir: dir, suffix: suffix}
}

// FileName returns the base file name holding prices for code.
func (f *Folder) FileName(code string) string {
	return strings.ToUpper(strings.TrimSpace(code)) + f.suffix
}

// ListAvailableCodes returns the sorted, de-duplicated upper-case codes that
// have a price file in the folder. Sub-directories are ignored.
func (f *Folder) ListAvailableCodes() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, apperr.SourceIO(err).WithSource(f.dir)
	}

	seen := make(map[string]struct{}, len(entries))
	codes := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, f.suffix) {
			continue
		}
		code := strings.ToUpper(strings.TrimSuffix(name, f.suffix))
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// Open opens the price file of code.
//
// A missing file fails with SourceNotFound; any other failure with SourceIO.
// Both carry the file name as their source.
func (f *Folder) Open(code string) (io.ReadCloser, error) {
	name := f.FileName(code)
	file, err := os.Open(filepath.Join(f.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.SourceNotFound(err).WithSource(name)
		}
		return nil, apperr.SourceIO(err).WithSource(name)
	}
	return file, nil
}
