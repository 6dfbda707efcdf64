package classify

import "lomtag/internal/genre"

// MinimumTags is the smallest tag count an output record may carry.
const MinimumTags = 2

// TopUp names the branch EnsureMinimum took.
type TopUp int

const (
	TopUpNone TopUp = iota
	// TopUpPeriodOnly: the only tag was a time period; a default style was added.
	TopUpPeriodOnly
	// TopUpStyleOnly: the only tag was a non-POP style; POP was added.
	TopUpStyleOnly
	// TopUpPopOnly: the only tag was POP, typically the unknown-artist
	// fallback; LĀGERIS or ELECTRO was added by year.
	TopUpPopOnly
	// TopUpEmpty: no tags at all; POP was added and then topped up as POP-only.
	TopUpEmpty
)

var topUpNames = map[TopUp]string{
	TopUpNone:       "none",
	TopUpPeriodOnly: "period-only",
	TopUpStyleOnly:  "style-only",
	TopUpPopOnly:    "pop-only",
	TopUpEmpty:      "empty",
}

func (t TopUp) String() string {
	if name, ok := topUpNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the branch name.
func (t TopUp) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// EnsureMinimum adds tags until the set has at least MinimumTags members. It
// never removes a tag.
func EnsureMinimum(tags genre.Set, song Song) (genre.Set, TopUp) {
	switch tags.Len() {
	case 0:
		topped, _ := topUpSingle(genre.Of(genre.Pop), song)
		return topped, TopUpEmpty
	case 1:
		return topUpSingle(tags, song)
	default:
		return tags, TopUpNone
	}
}

func topUpSingle(tags genre.Set, song Song) (genre.Set, TopUp) {
	sole, _ := tags.Only()
	switch {
	case sole.IsTimePeriod():
		if song.vintage() {
			return tags.Add(genre.Schlager), TopUpPeriodOnly
		}
		return tags.Add(genre.Pop), TopUpPeriodOnly
	case sole != genre.Pop:
		return tags.Add(genre.Pop), TopUpStyleOnly
	case !song.Year.Valid || song.Year.Value < ElectroFromYear:
		return tags.Add(genre.Schlager), TopUpPopOnly
	default:
		return tags.Add(genre.Electro), TopUpPopOnly
	}
}
