package artists

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"lomtag/internal/genre"
	"lomtag/internal/textutil"
)

// ErrInvalidTable reports a table entry that violates the table rules.
var ErrInvalidTable = errors.New("invalid artist table")

// Entry is one curated key and the style tags it maps to.
type Entry struct {
	Key  string
	Tags []genre.Tag
}

// Set returns the entry tags as a set.
func (e Entry) Set() genre.Set { return genre.Of(e.Tags...) }

// Match is a table key found inside an artist name.
type Match struct {
	Key      string      `json:"key"`
	Tags     []genre.Tag `json:"tags"`
	Position int         `json:"position"`
	Length   int         `json:"length"`
}

// Set returns the matched tags as a set.
func (m Match) Set() genre.Set { return genre.Of(m.Tags...) }

type entry struct {
	Entry
	folded string
	length int
}

// Table is an ordered, validated artist genre table. It is read-only after
// construction and safe for concurrent lookups.
type Table struct {
	entries []entry
	index   map[string]int
}

// New validates entries and builds a table. An exact duplicate key (after
// folding) with the same tags is dropped; a duplicate with different tags is
// an error.
func New(entries []Entry) (*Table, error) {
	t := &Table{index: make(map[string]int, len(entries))}
	for i, e := range entries {
		if err := t.add(e, false); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return t, nil
}

// Merge returns a new table with overrides applied: entries whose key already
// exists replace the tags in place, new keys are appended.
func (t *Table) Merge(overrides []Entry) (*Table, error) {
	out := &Table{
		entries: make([]entry, len(t.entries), len(t.entries)+len(overrides)),
		index:   make(map[string]int, len(t.index)+len(overrides)),
	}
	copy(out.entries, t.entries)
	for k, v := range t.index {
		out.index[k] = v
	}
	for i, e := range overrides {
		if err := out.add(e, true); err != nil {
			return nil, fmt.Errorf("override %d: %w", i+1, err)
		}
	}
	return out, nil
}

func (t *Table) add(e Entry, replace bool) error {
	folded := textutil.Fold(e.Key)
	if folded == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidTable)
	}
	if err := validateTags(e); err != nil {
		return err
	}
	normalized := entry{
		Entry:  Entry{Key: e.Key, Tags: append([]genre.Tag(nil), e.Tags...)},
		folded: folded,
		length: textutil.Length(folded),
	}
	if pos, ok := t.index[folded]; ok {
		if replace {
			t.entries[pos] = normalized
			return nil
		}
		if t.entries[pos].Set() != e.Set() {
			return fmt.Errorf("%w: key %q redefined with different tags", ErrInvalidTable, e.Key)
		}
		return nil
	}
	t.index[folded] = len(t.entries)
	t.entries = append(t.entries, normalized)
	return nil
}

func validateTags(e Entry) error {
	if len(e.Tags) == 0 || len(e.Tags) > 2 {
		return fmt.Errorf("%w: key %q must list one or two tags, got %d", ErrInvalidTable, e.Key, len(e.Tags))
	}
	if len(e.Tags) == 2 && e.Tags[0] == e.Tags[1] {
		return fmt.Errorf("%w: key %q repeats tag %s", ErrInvalidTable, e.Key, e.Tags[0])
	}
	for _, tag := range e.Tags {
		if !tag.Valid() {
			return fmt.Errorf("%w: key %q: %v", ErrInvalidTable, e.Key, genre.ErrUnknownTag)
		}
		if tag.IsTimePeriod() {
			return fmt.Errorf("%w: key %q uses time-period tag %s", ErrInvalidTable, e.Key, tag)
		}
	}
	return nil
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the table in definition order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Key: e.Key, Tags: append([]genre.Tag(nil), e.Tags...)}
	}
	return out
}

// Candidates returns every key that occurs in artist, ordered by precedence:
// longest key first, definition order among equal lengths.
func (t *Table) Candidates(artist string) []Match {
	if t == nil {
		return nil
	}
	name := textutil.Fold(artist)
	if name == "" {
		return nil
	}
	var matches []Match
	for pos, e := range t.entries {
		if !strings.Contains(name, e.folded) {
			continue
		}
		matches = append(matches, Match{
			Key:      e.Key,
			Tags:     append([]genre.Tag(nil), e.Tags...),
			Position: pos,
			Length:   e.length,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Length > matches[j].Length
	})
	return matches
}

// Lookup returns the winning key for artist. The boolean is false when no key
// occurs in the name; that is an expected outcome, not an error.
func (t *Table) Lookup(artist string) (Match, bool) {
	matches := t.Candidates(artist)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}
