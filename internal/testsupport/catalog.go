package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"lomtag/internal/genre"
)

// Song is one fixture row. Markers lists display names of tags whose marker
// column should be set.
type Song struct {
	Artist  string
	Title   string
	Year    string
	Era     string
	Markers []string
}

// CatalogHeader returns the spreadsheet header row.
func CatalogHeader() []string {
	header := []string{"YouTube", "Artist", "Song", "Album", "Year", "Length", "Era", "Start", "End"}
	for _, tag := range genre.All() {
		header = append(header, tag.String())
	}
	return header
}

// CatalogRecord renders song as a full-width row.
func CatalogRecord(song Song) []string {
	row := []string{"https://youtu.be/x", song.Artist, song.Title, "", song.Year, "3:30", song.Era, "", ""}
	marks := make(map[string]bool, len(song.Markers))
	for _, m := range song.Markers {
		marks[m] = true
	}
	for _, tag := range genre.All() {
		cell := ""
		if marks[tag.String()] {
			cell = "X"
		}
		row = append(row, cell)
	}
	return row
}

// WriteCatalog writes a comma separated catalog with a header row.
func WriteCatalog(t testing.TB, path string, songs []Song) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CatalogHeader()); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for _, song := range songs {
		if err := w.Write(CatalogRecord(song)); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
}

// ReadTSV parses a tab separated file into records.
func ReadTSV(t testing.TB, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

// MarkedTags returns the display names of the tags marked in a full-width
// record, in column order.
func MarkedTags(record []string) []string {
	var names []string
	for _, tag := range genre.All() {
		i := 9 + int(tag)
		if i < len(record) && record[i] == "X" {
			names = append(names, tag.String())
		}
	}
	return names
}
