package classify

import (
	"fmt"

	"lomtag/internal/artists"
	"lomtag/internal/genre"
	"lomtag/internal/textutil"
)

// KeywordRule adds Tag when any of Words occurs in the song title. Matching is
// a case-insensitive substring test, so "rock" also hits "Rockabilly".
type KeywordRule struct {
	Tag   genre.Tag
	Words []string
}

// DefaultKeywords returns the title keyword rules used when none are configured.
func DefaultKeywords() []KeywordRule {
	return []KeywordRule{
		{Tag: genre.HeavyRock, Words: []string{"rock", "metal", "punk"}},
		{Tag: genre.Dance, Words: []string{"disco", "disko"}},
	}
}

// Exception is a catalog override for one act whose catalog spans two styles
// split by year. The artist table cannot express year-dependent tags, so
// these are listed by name instead.
type Exception struct {
	Name string
	// Artist is matched as a folded substring of the artist column.
	Artist string
	// LastYear is the latest release year the override applies to. Songs
	// without a year are never overridden.
	LastYear int
	Remove   genre.Tag
	Add      genre.Tag
}

// Applies reports whether the override fires for song.
func (e Exception) Applies(song Song) bool {
	return song.Year.AtMost(e.LastYear) && textutil.ContainsFold(song.Artist, e.Artist)
}

// LiviVintage covers Līvi: the table lists them as POP + LĀGERIS for their
// modern catalog, but their pre-1988 recordings are schlager only.
var LiviVintage = Exception{
	Name:     "livi-vintage",
	Artist:   "Līvi",
	LastYear: RetroLastYear,
	Remove:   genre.Pop,
	Add:      genre.Schlager,
}

// DefaultExceptions lists the overrides applied before keyword inference.
func DefaultExceptions() []Exception {
	return []Exception{LiviVintage}
}

type keywordMatcher struct {
	tag   genre.Tag
	words []string
}

func compileKeywords(rules []KeywordRule) ([]keywordMatcher, error) {
	out := make([]keywordMatcher, 0, len(rules))
	for _, rule := range rules {
		if !rule.Tag.Valid() {
			return nil, fmt.Errorf("keyword rule: %w", genre.ErrUnknownTag)
		}
		if rule.Tag.IsTimePeriod() {
			return nil, fmt.Errorf("keyword rule: %s is a time-period tag", rule.Tag)
		}
		words := make([]string, 0, len(rule.Words))
		for _, w := range rule.Words {
			if folded := textutil.Fold(w); folded != "" {
				words = append(words, folded)
			}
		}
		if len(words) == 0 {
			continue
		}
		out = append(out, keywordMatcher{tag: rule.Tag, words: words})
	}
	return out, nil
}

// StyleTrace records how the style stage reached its result.
type StyleTrace struct {
	Match       *artists.Match `json:"match,omitempty"`
	Exception   string         `json:"exception,omitempty"`
	KeywordTags genre.Set      `json:"keyword_tags"`
	Fallback    bool           `json:"fallback"`
}

// Style infers the style tags for song. The result never contains a
// time-period tag and is never empty.
func (c *Classifier) Style(song Song) (genre.Set, StyleTrace) {
	var trace StyleTrace
	var tags genre.Set

	if match, ok := c.table.Lookup(song.Artist); ok {
		trace.Match = &match
		tags = match.Set()
	}

	for _, exc := range c.exceptions {
		if exc.Applies(song) {
			tags = tags.Remove(exc.Remove).Add(exc.Add)
			trace.Exception = exc.Name
		}
	}

	title := textutil.Fold(song.Title)
	for _, kw := range c.keywords {
		if textutil.ContainsAny(title, kw.words) {
			tags = tags.Add(kw.tag)
			trace.KeywordTags = trace.KeywordTags.Add(kw.tag)
		}
	}

	tags = tags.Without(genre.TimePeriods)

	if tags.Empty() {
		trace.Fallback = true
		if song.vintage() {
			tags = genre.Of(genre.Schlager, genre.Pop)
		} else {
			tags = genre.Of(genre.Pop)
		}
	}
	return tags, trace
}
