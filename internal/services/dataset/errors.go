package dataset

import (
	"errors"
	"strings"
)

// ErrDatasetNotFound means no candidate location yielded a readable,
// parseable transactions extract. The wrapping error names every path tried.
var ErrDatasetNotFound = errors.New("transactions CSV not found")

// SchemaError reports required columns absent from a loaded extract.
type SchemaError struct {
	Missing []string // sorted
}

func (e *SchemaError) Error() string {
	return "missing required column(s) in CSV: " + strings.Join(e.Missing, ", ")
}
