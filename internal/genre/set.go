package genre

import (
	"encoding/json"
	"math/bits"
	"strings"
)

// Set is an unordered collection of tags. The zero value is empty.
type Set uint32

// Preserved is the subset of tags maintained by hand in the spreadsheet.
// Reclassification carries these forward and never removes them.
const Preserved Set = 1<<Regional | 1<<TalentShow | 1<<Live | 1<<Children

// TimePeriods holds every tag of the TimePeriod class.
const TimePeriods Set = 1<<Retro | 1<<Atmoda | 1<<New

// Styles holds every tag of the Style class.
const Styles Set = (1<<Count - 1) &^ TimePeriods

// Of builds a set from tags.
func Of(tags ...Tag) Set {
	var s Set
	for _, t := range tags {
		s = s.Add(t)
	}
	return s
}

// Add returns s with t included. Tags outside the taxonomy are ignored.
func (s Set) Add(t Tag) Set {
	if !t.Valid() {
		return s
	}
	return s | 1<<t
}

// Remove returns s without t.
func (s Set) Remove(t Tag) Set {
	if !t.Valid() {
		return s
	}
	return s &^ (1 << t)
}

// Has reports whether t is in s.
func (s Set) Has(t Tag) bool {
	return t.Valid() && s&(1<<t) != 0
}

// Union returns the tags in either set.
func (s Set) Union(o Set) Set { return s | o }

// Intersect returns the tags in both sets.
func (s Set) Intersect(o Set) Set { return s & o }

// Without returns the tags of s that are not in o.
func (s Set) Without(o Set) Set { return s &^ o }

// Len returns the number of tags.
func (s Set) Len() int { return bits.OnesCount32(uint32(s)) }

// Empty reports whether the set has no tags.
func (s Set) Empty() bool { return s == 0 }

// Tags lists the members in column order.
func (s Set) Tags() []Tag {
	out := make([]Tag, 0, s.Len())
	for i := 0; i < Count; i++ {
		if s.Has(Tag(i)) {
			out = append(out, Tag(i))
		}
	}
	return out
}

// Only returns the single member of a one-element set.
func (s Set) Only() (Tag, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return Tag(bits.TrailingZeros32(uint32(s))), true
}

// Names lists display names in column order.
func (s Set) Names() []string {
	tags := s.Tags()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

// String renders the set as "{A, B}".
func (s Set) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}

// MarshalJSON encodes the set as a list of slugs in column order.
func (s Set) MarshalJSON() ([]byte, error) {
	tags := s.Tags()
	slugs := make([]string, len(tags))
	for i, t := range tags {
		slugs[i] = t.Slug()
	}
	return json.Marshal(slugs)
}

// UnmarshalJSON accepts a list of slugs or display names.
func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var out Set
	for _, name := range names {
		t, err := Parse(name)
		if err != nil {
			return err
		}
		out = out.Add(t)
	}
	*s = out
	return nil
}
