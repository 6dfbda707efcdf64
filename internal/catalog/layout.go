package catalog

import (
	"strings"

	"lomtag/internal/genre"
)

// Column offsets of the descriptive block.
const (
	ColYouTube = iota
	ColArtist
	ColSong
	ColAlbum
	ColYear
	ColLength
	ColEra
	ColTrimStart
	ColTrimEnd

	// GenreStart is the offset of the first marker column.
	GenreStart
)

// Width is the number of columns every row is padded to.
const Width = GenreStart + genre.Count

// Marker is the cell value written for a set tag.
const Marker = "X"

// Row is one data row of the catalog.
type Row struct {
	// Line is the 1-based line of the row in the input file.
	Line   int
	Fields []string
}

func (r Row) field(i int) string {
	if i < len(r.Fields) {
		return r.Fields[i]
	}
	return ""
}

func (r Row) Artist() string { return r.field(ColArtist) }
func (r Row) Song() string   { return r.field(ColSong) }
func (r Row) Year() string   { return r.field(ColYear) }
func (r Row) Era() string    { return r.field(ColEra) }

// Markers returns the tags whose marker cell is set.
func (r Row) Markers() genre.Set {
	var set genre.Set
	for _, tag := range genre.All() {
		if IsMarker(r.field(GenreStart + int(tag))) {
			set = set.Add(tag)
		}
	}
	return set
}

// SetMarkers rewrites every marker cell from tags.
func (r *Row) SetMarkers(tags genre.Set) {
	r.pad()
	for _, tag := range genre.All() {
		cell := ""
		if tags.Has(tag) {
			cell = Marker
		}
		r.Fields[GenreStart+int(tag)] = cell
	}
}

func (r *Row) pad() {
	for len(r.Fields) < Width {
		r.Fields = append(r.Fields, "")
	}
}

// IsMarker reports whether a cell marks a tag as set.
func IsMarker(cell string) bool {
	return strings.EqualFold(strings.TrimSpace(cell), Marker)
}

// Dataset is a whole catalog file held in memory.
type Dataset struct {
	Header []string
	Rows   []Row
}

func padHeader(header []string) []string {
	for len(header) < Width {
		i := len(header)
		name := ""
		if i >= GenreStart {
			name = genre.Tag(i - GenreStart).String()
		}
		header = append(header, name)
	}
	return header
}
