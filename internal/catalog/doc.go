// Package catalog reads and writes the song catalog spreadsheet export.
//
// The layout is fixed: nine descriptive columns followed by one marker column
// per genre tag, in taxonomy order. A marker cell holding "X" (any case,
// surrounding space ignored) means the tag is set. Rows shorter than the
// layout are padded with empty cells; longer rows keep their extra cells.
package catalog
