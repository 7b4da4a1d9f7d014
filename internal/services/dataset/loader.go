// Package dataset loads the shared transactions extract and turns it into
// typed, normalized rows. The pipeline is load → validate schema →
// normalize; filtering and aggregation live in the dashboard service.
package dataset

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
)

// Table is a raw, untyped CSV load tagged with the path it came from.
type Table struct {
	Path    string
	Header  []string
	Records [][]string
}

// Loader tries an ordered list of candidate locations for the extract.
type Loader struct {
	candidates []string
}

func NewLoader(candidates ...string) *Loader {
	return &Loader{candidates: candidates}
}

// Load returns the first candidate that opens and parses as CSV. When every
// candidate fails, the error wraps ErrDatasetNotFound and lists all
// attempted locations.
func (l *Loader) Load() (*Table, error) {
	for _, path := range l.candidates {
		table, err := loadFile(path)
		if err != nil {
			log.Printf("dataset candidate %s: %v", path, err)
			continue
		}
		return table, nil
	}
	return nil, fmt.Errorf("%w: tried %s", ErrDatasetNotFound, strings.Join(l.candidates, ", "))
}

func loadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Rows in the extract occasionally vary in width; normalization deals
	// with short rows, so don't let the reader reject them.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV %s is empty", path)
	}

	return &Table{
		Path:    path,
		Header:  rows[0],
		Records: rows[1:],
	}, nil
}
