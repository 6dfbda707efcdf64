package classify

import (
	"errors"

	"lomtag/internal/artists"
	"lomtag/internal/genre"
)

// Classifier holds the read-only rules shared by every song of a run.
type Classifier struct {
	table      *artists.Table
	keywords   []keywordMatcher
	exceptions []Exception
}

// Option customizes a Classifier.
type Option func(*options)

type options struct {
	keywords   []KeywordRule
	exceptions []Exception
}

// WithKeywords replaces the default title keyword rules.
func WithKeywords(rules []KeywordRule) Option {
	return func(o *options) { o.keywords = rules }
}

// WithExceptions replaces the default named catalog overrides.
func WithExceptions(exceptions []Exception) Option {
	return func(o *options) { o.exceptions = exceptions }
}

// New builds a Classifier around an artist table.
func New(table *artists.Table, opts ...Option) (*Classifier, error) {
	if table == nil {
		return nil, errors.New("classify: artist table is required")
	}
	o := options{
		keywords:   DefaultKeywords(),
		exceptions: DefaultExceptions(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	keywords, err := compileKeywords(o.keywords)
	if err != nil {
		return nil, err
	}
	return &Classifier{
		table:      table,
		keywords:   keywords,
		exceptions: append([]Exception(nil), o.exceptions...),
	}, nil
}

// Result is the outcome of classifying one song.
type Result struct {
	Tags      genre.Set  `json:"tags"`
	Period    genre.Set  `json:"period"`
	Style     genre.Set  `json:"style"`
	Preserved genre.Set  `json:"preserved"`
	Trace     StyleTrace `json:"trace"`
	TopUp     TopUp      `json:"top_up"`
}

// Matched reports whether the artist matched a table key.
func (r Result) Matched() bool { return r.Trace.Match != nil }

// Preserve keeps only the hand-curated tags of a previous run.
func Preserve(prior genre.Set) genre.Set {
	return prior.Intersect(genre.Preserved)
}

// Classify computes the final tag set for song.
func (c *Classifier) Classify(song Song) Result {
	period := TimePeriod(song.Year, song.Era)
	style, trace := c.Style(song)
	preserved := Preserve(song.Prior)

	tags, topUp := EnsureMinimum(period.Union(style).Union(preserved), song)
	return Result{
		Tags:      tags,
		Period:    period,
		Style:     style,
		Preserved: preserved,
		Trace:     trace,
		TopUp:     topUp,
	}
}
