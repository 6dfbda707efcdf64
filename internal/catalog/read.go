package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("catalog input is empty")

// ReadOptions configures parsing.
type ReadOptions struct {
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Load reads a catalog file from disk.
func Load(path string, opts ReadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	ds, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ds, nil
}

// Read parses a delimited catalog with a header row. Quoting is lenient and
// rows may have any number of fields; short rows are padded to Width.
func Read(r io.Reader, opts ReadOptions) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Comma
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	ds := &Dataset{Header: padHeader(header)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		row := Row{Line: line, Fields: record}
		row.pad()
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}
