// Package classify assigns genre tags to a single song.
//
// Classification runs four stages over the song's artist, title, year and era:
//
//   - TimePeriod derives at most one of RETRO, ATMODA or JAUNUMI from the year,
//     falling back to the era marker when the year is missing.
//   - Style starts from the artist table lookup, applies the named catalog
//     exceptions, adds title keyword tags, strips time-period tags and falls
//     back to a default when nothing matched.
//   - Preserve carries hand-curated tags from the previous run forward.
//   - EnsureMinimum tops the combined set up to two tags.
//
// Every stage is a pure function of its inputs plus read-only rules, so a
// Classifier may be shared between goroutines. ClassifyAll fans a batch out
// over a bounded worker pool and returns results in input order.
package classify
