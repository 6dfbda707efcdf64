package report

import (
	"sort"

	"lomtag/internal/classify"
	"lomtag/internal/genre"
)

// Entry is one classified row.
type Entry struct {
	Line     int
	Artist   string
	Song     string
	Year     string
	Original genre.Set
	Result   classify.Result
}

// Sample is a row listed in the report.
type Sample struct {
	Line   int       `json:"line"`
	Artist string    `json:"artist"`
	Song   string    `json:"song"`
	Year   string    `json:"year"`
	Tags   genre.Set `json:"tags"`
}

func sampleOf(e Entry) Sample {
	return Sample{Line: e.Line, Artist: e.Artist, Song: e.Song, Year: e.Year, Tags: e.Result.Tags}
}

// Options sizes the sample listings.
type Options struct {
	SampleHead int
	SampleTail int
}

type artistCount struct {
	name  string
	count int
	first int
}

// Collector accumulates statistics. It is not safe for concurrent use; feed it
// rows in order after classification.
type Collector struct {
	opts Options

	songs      int
	changed    int
	matched    int
	exceptions int
	tagCounts  [genre.Count]int
	perSong    map[int]int
	topUps     map[classify.TopUp]int
	unmatched  map[string]*artistCount
	singleTag  []Sample
	head       []Sample
	tail       []Sample
}

// NewCollector returns an empty collector.
func NewCollector(opts Options) *Collector {
	if opts.SampleHead < 0 {
		opts.SampleHead = 0
	}
	if opts.SampleTail < 0 {
		opts.SampleTail = 0
	}
	return &Collector{
		opts:      opts,
		perSong:   make(map[int]int),
		topUps:    make(map[classify.TopUp]int),
		unmatched: make(map[string]*artistCount),
	}
}

// Add records one row.
func (c *Collector) Add(e Entry) {
	tags := e.Result.Tags
	c.songs++
	if tags != e.Original {
		c.changed++
	}
	for _, tag := range tags.Tags() {
		c.tagCounts[tag]++
	}
	c.perSong[tags.Len()]++
	c.topUps[e.Result.TopUp]++
	if e.Result.Trace.Exception != "" {
		c.exceptions++
	}

	if e.Result.Matched() {
		c.matched++
	} else {
		ac, ok := c.unmatched[e.Artist]
		if !ok {
			ac = &artistCount{name: e.Artist, first: c.songs}
			c.unmatched[e.Artist] = ac
		}
		ac.count++
	}

	if tags.Len() == 1 {
		c.singleTag = append(c.singleTag, sampleOf(e))
	}

	switch {
	case len(c.head) < c.opts.SampleHead:
		c.head = append(c.head, sampleOf(e))
	case c.opts.SampleTail > 0:
		if len(c.tail) == c.opts.SampleTail {
			copy(c.tail, c.tail[1:])
			c.tail = c.tail[:len(c.tail)-1]
		}
		c.tail = append(c.tail, sampleOf(e))
	}
}

// TagCount is the number of songs carrying one tag.
type TagCount struct {
	Tag   genre.Tag `json:"tag"`
	Name  string    `json:"name"`
	Songs int       `json:"songs"`
}

// Bucket is the number of songs carrying exactly Tags tags.
type Bucket struct {
	Tags  int `json:"tags"`
	Songs int `json:"songs"`
}

// ArtistCount is an unmatched artist and how many songs it appears on.
type ArtistCount struct {
	Artist string `json:"artist"`
	Songs  int    `json:"songs"`
}

// Summary is the frozen report of a run.
type Summary struct {
	RunID  string `json:"run_id,omitempty"`
	Input  string `json:"input,omitempty"`
	Output string `json:"output,omitempty"`
	Backup string `json:"backup,omitempty"`

	Songs      int `json:"songs"`
	Changed    int `json:"changed"`
	Matched    int `json:"matched"`
	Exceptions int `json:"exceptions"`

	TagCounts  []TagCount `json:"tag_counts"`
	TotalMarks int        `json:"total_marks"`
	Average    float64    `json:"average_per_song"`

	Distribution []Bucket       `json:"distribution"`
	OneTag       int            `json:"one_tag"`
	TwoTags      int            `json:"two_tags"`
	ThreePlus    int            `json:"three_plus"`
	AtLeastTwo   int            `json:"at_least_two"`
	TopUps       map[string]int `json:"top_ups"`

	Unmatched      []ArtistCount `json:"unmatched"`
	UnmatchedSongs int           `json:"unmatched_songs"`

	SingleTag []Sample `json:"single_tag"`
	Head      []Sample `json:"head"`
	Tail      []Sample `json:"tail"`
}

// AtLeastTwoPercent returns the share of songs with two or more tags.
func (s Summary) AtLeastTwoPercent() float64 {
	if s.Songs == 0 {
		return 0
	}
	return 100 * float64(s.AtLeastTwo) / float64(s.Songs)
}

// Summary freezes the current counters.
func (c *Collector) Summary() Summary {
	s := Summary{
		Songs:      c.songs,
		Changed:    c.changed,
		Matched:    c.matched,
		Exceptions: c.exceptions,
		TopUps:     make(map[string]int, len(c.topUps)),
		SingleTag:  append([]Sample(nil), c.singleTag...),
		Head:       append([]Sample(nil), c.head...),
		Tail:       append([]Sample(nil), c.tail...),
	}

	for _, tag := range genre.All() {
		n := c.tagCounts[tag]
		s.TagCounts = append(s.TagCounts, TagCount{Tag: tag, Name: tag.String(), Songs: n})
		s.TotalMarks += n
	}
	if c.songs > 0 {
		s.Average = float64(s.TotalMarks) / float64(c.songs)
	}

	sizes := make([]int, 0, len(c.perSong))
	for k := range c.perSong {
		sizes = append(sizes, k)
	}
	sort.Ints(sizes)
	for _, k := range sizes {
		n := c.perSong[k]
		s.Distribution = append(s.Distribution, Bucket{Tags: k, Songs: n})
		switch {
		case k == 1:
			s.OneTag += n
		case k == 2:
			s.TwoTags += n
		case k >= 3:
			s.ThreePlus += n
		}
		if k >= classify.MinimumTags {
			s.AtLeastTwo += n
		}
	}

	for step, n := range c.topUps {
		s.TopUps[step.String()] = n
	}

	counts := make([]*artistCount, 0, len(c.unmatched))
	for _, ac := range c.unmatched {
		counts = append(counts, ac)
		s.UnmatchedSongs += ac.count
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].first < counts[j].first
	})
	for _, ac := range counts {
		s.Unmatched = append(s.Unmatched, ArtistCount{Artist: ac.name, Songs: ac.count})
	}
	return s
}
