// Package dataset loads the mountain log, a CSV-formatted text file with
// one row per peak. Loading only checks the schema; cells stay raw strings
// until a consumer asks for a typed value through Row accessors.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Columns every dataset must carry. Extra columns (climbed_date, notes)
// are tolerated and ignored.
var requiredColumns = []string{"name", "lat", "lon", "climbed", "url", "province", "challenge"}

// SchemaError reports required columns missing from the dataset header.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Dataset is an ordered collection of raw mountain rows.
type Dataset struct {
	index   map[string]int
	records [][]string
}

// Load reads and parses the dataset file at the given path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset '%s': %w", path, err)
	}

	return ds, nil
}

// Read parses CSV data with a header row and verifies the header is a
// superset of the required column set. Rows are kept in file order.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no header row")
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}

	missing := []string{}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	return &Dataset{
		index:   index,
		records: records[1:],
	}, nil
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Rows returns the rows in file order.
func (d *Dataset) Rows() []Row {
	rows := make([]Row, len(d.records))
	for i, cells := range d.records {
		rows[i] = Row{index: d.index, cells: cells}
	}
	return rows
}
