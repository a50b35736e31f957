package importer

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingField = errors.New("missing field")

// Fields resolves header names to column positions. The index is built
// once per file; column order in the export varies between runs.
type Fields struct {
	index map[string]int
}

// NewFields builds the lookup from the header row. Header cells are
// trimmed; on duplicates the first occurrence wins.
func NewFields(header []string) *Fields {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return &Fields{index: idx}
}

// Get returns the trimmed cell under the named header. Unknown names
// and rows shorter than the resolved position are missing-field errors.
func (f *Fields) Get(row []string, name string) (string, error) {
	pos, ok := f.index[name]
	if !ok {
		return "", fmt.Errorf("%w: %q not in header", ErrMissingField, name)
	}
	if pos >= len(row) {
		return "", fmt.Errorf("%w: row has no column %d (%q)", ErrMissingField, pos, name)
	}
	return strings.TrimSpace(row[pos]), nil
}

// fieldReader is a sticky-error wrapper around Fields for builders that
// read many cells in sequence.
type fieldReader struct {
	fields *Fields
	row    []string
	err    error
}

func (r *fieldReader) get(name string) string {
	if r.err != nil {
		return ""
	}
	v, err := r.fields.Get(r.row, name)
	if err != nil {
		r.err = err
		return ""
	}
	return v
}
