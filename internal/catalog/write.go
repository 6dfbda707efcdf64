package catalog

import (
	"encoding/csv"
	"io"

	"lomtag/internal/fileutil"
)

// WriteOptions configures serialization.
type WriteOptions struct {
	// Comma is the field delimiter. Zero means tab.
	Comma rune
	// Header controls whether the header row is written.
	Header bool
}

// Write serializes ds.
func Write(w io.Writer, ds *Dataset, opts WriteOptions) error {
	writer := csv.NewWriter(w)
	writer.Comma = opts.Comma
	if writer.Comma == 0 {
		writer.Comma = '\t'
	}
	if opts.Header {
		if err := writer.Write(ds.Header); err != nil {
			return err
		}
	}
	for _, row := range ds.Rows {
		if err := writer.Write(row.Fields); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Save writes ds to path atomically, holding the output lock while writing.
func Save(path string, ds *Dataset, opts WriteOptions) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Write(w, ds, opts)
	})
}
