// Package dataset loads the raw launch table from delimited input.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"elevron/pkg/utils"
)

// Dataset loading errors.
var (
	ErrNoHeader = errors.New("input has no header row")
)

// Table is the raw tabular dataset held fully in memory. Headers are
// normalized once at load; RawHeaders preserves the source spelling.
type Table struct {
	Path       string
	RawHeaders []string
	Headers    []string
	Rows       [][]string
	Skipped    int // malformed rows dropped during the read
}

// Load reads a CSV file into a Table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, err
	}

	table.Path = path

	return table, nil
}

// Parse reads CSV content into a Table. Rows that fail to parse are counted
// and skipped; only a missing header row is fatal.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rawHeaders, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}

	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		headers[i] = utils.NormalizeHeader(h)
	}

	table := &Table{
		RawHeaders: rawHeaders,
		Headers:    headers,
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			table.Skipped++

			continue
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// Cell returns the trimmed cell at (row, col), or "" when the row is ragged.
func (t *Table) Cell(row, col int) string {
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}

	return utils.CleanCell(t.Rows[row][col])
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
