package classify

import (
	"strconv"
	"strings"

	"lomtag/internal/genre"
)

// Period boundaries, inclusive.
const (
	RetroLastYear   = 1987
	AtmodaFirstYear = 1988
	AtmodaLastYear  = 1995
	NewFirstYear    = 2022

	// ElectroFromYear is the first year for which a POP-only song is topped up
	// with ELECTRO rather than LĀGERIS.
	ElectroFromYear = 2005
)

// Era markers recognized in the era column.
const (
	EraVintage = "vintage"
	EraVCR     = "vcr"
)

// Year is a release year that may be absent.
type Year struct {
	Value int
	Valid bool
}

// KnownYear returns a present year.
func KnownYear(v int) Year { return Year{Value: v, Valid: true} }

// ParseYear reads the year column. Anything that is not an integer is treated
// as absent.
func ParseYear(raw string) Year {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Year{}
	}
	return KnownYear(v)
}

// AtMost reports whether the year is present and not later than limit.
func (y Year) AtMost(limit int) bool { return y.Valid && y.Value <= limit }

func (y Year) String() string {
	if !y.Valid {
		return ""
	}
	return strconv.Itoa(y.Value)
}

// NormalizeEra lowercases and trims the era column.
func NormalizeEra(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Song is the classifier input for one catalog row.
type Song struct {
	Artist string
	Title  string
	Year   Year
	// Era is compared after NormalizeEra.
	Era string
	// Prior holds the tags the row carried before this run.
	Prior genre.Set
}

func (s Song) era() string { return NormalizeEra(s.Era) }

// vintage reports whether the song belongs to the pre-1988 catalog, either by
// era marker or by year.
func (s Song) vintage() bool {
	return s.era() == EraVintage || s.Year.AtMost(RetroLastYear)
}
