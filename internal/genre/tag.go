package genre

import (
	"errors"
	"fmt"
	"strings"

	"lomtag/internal/textutil"
)

// Tag is one category of the taxonomy. The numeric value is the marker column
// offset within the genre block.
type Tag uint8

// Tags in marker column order.
const (
	Pop Tag = iota
	HeavyRock
	Schlager
	Retro
	Regional
	Atmoda
	New
	HipHop
	TalentShow
	Live
	Children
	Jazz
	Dance
	Electro
	Folk
	Reggae
	Academic

	// Count is the number of tags in the taxonomy.
	Count = int(Academic) + 1
)

// Class partitions the taxonomy.
type Class int

const (
	// Style tags describe the music.
	Style Class = iota
	// TimePeriod tags describe when the song was released.
	TimePeriod
)

func (c Class) String() string {
	if c == TimePeriod {
		return "time-period"
	}
	return "style"
}

// ErrUnknownTag reports a tag name that is not part of the taxonomy.
var ErrUnknownTag = errors.New("unknown tag")

type tagInfo struct {
	name  string
	slug  string
	class Class
}

var tagTable = [Count]tagInfo{
	Pop:        {"POP", "pop", Style},
	HeavyRock:  {"SMAGAIS ROKS", "heavy-rock", Style},
	Schlager:   {"LĀGERIS", "schlager", Style},
	Retro:      {"RETRO", "retro", TimePeriod},
	Regional:   {"RZEMJU", "regional", Style},
	Atmoda:     {"ATMODA", "atmoda", TimePeriod},
	New:        {"JAUNUMI", "new", TimePeriod},
	HipHop:     {"HIPHOP", "hiphop", Style},
	TalentShow: {"DZIESMU ŠOV", "talent-show", Style},
	Live:       {"LIVE", "live", Style},
	Children:   {"BĒRNU", "children", Style},
	Jazz:       {"JAZZ", "jazz", Style},
	Dance:      {"DEJU MŪZIKA", "dance", Style},
	Electro:    {"ELECTRO", "electro", Style},
	Folk:       {"FOLK", "folk", Style},
	Reggae:     {"REĢEJS", "reggae", Style},
	Academic:   {"Akadēmiskā", "academic", Style},
}

// All returns every tag in column order.
func All() []Tag {
	out := make([]Tag, Count)
	for i := range out {
		out[i] = Tag(i)
	}
	return out
}

// Valid reports whether t is inside the taxonomy.
func (t Tag) Valid() bool { return int(t) < Count }

// String returns the display name used in spreadsheet headers and reports.
func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
	return tagTable[t].name
}

// Slug returns the ASCII identifier used in config files and JSON output.
func (t Tag) Slug() string {
	if !t.Valid() {
		return ""
	}
	return tagTable[t].slug
}

// Class returns the partition the tag belongs to.
func (t Tag) Class() Class {
	if !t.Valid() {
		return Style
	}
	return tagTable[t].class
}

// IsTimePeriod reports whether the tag is derived from the release period.
func (t Tag) IsTimePeriod() bool { return t.Class() == TimePeriod }

// MarshalText encodes the tag as its slug.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, uint8(t))
	}
	return []byte(t.Slug()), nil
}

// UnmarshalText accepts either a display name or a slug.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parse resolves a display name or slug, ignoring case and surrounding space.
func Parse(value string) (Tag, error) {
	key := textutil.Fold(value)
	if key == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownTag)
	}
	for i, info := range tagTable {
		if key == info.slug || key == textutil.Fold(info.name) {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, value)
}

// ParseList parses a comma separated list of tags.
func ParseList(value string) (Set, error) {
	var set Set
	for _, part := range strings.Split(value, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		tag, err := Parse(part)
		if err != nil {
			return 0, err
		}
		set = set.Add(tag)
	}
	return set, nil
}
