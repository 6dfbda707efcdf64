package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Color modes accepted by ResolveColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// RenderOptions controls text rendering.
type RenderOptions struct {
	Color bool
	Fancy bool
}

// ResolveColor turns a color mode into a decision for w. NO_COLOR is honoured
// by the auto mode through fatih/color.
func ResolveColor(mode string, w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return IsTerminal(w) && !color.NoColor
	}
}

const rule = "============================================================"

type painter struct {
	heading *color.Color
	good    *color.Color
	warn    *color.Color
}

func newPainter(enabled bool) painter {
	p := painter{
		heading: color.New(color.Bold),
		good:    color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.heading, p.good, p.warn} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Render writes the text report.
func Render(w io.Writer, s Summary, opts RenderOptions) error {
	p := newPainter(opts.Color)
	var b strings.Builder

	fmt.Fprintf(&b, "Read %d songs from input file.\n", s.Songs)
	if s.Output != "" {
		fmt.Fprintf(&b, "Output: %s\n", s.Output)
	}
	if s.Backup != "" {
		fmt.Fprintf(&b, "Backup: %s\n", s.Backup)
	}
	fmt.Fprintf(&b, "Modified: %d / %d\n\n", s.Changed, s.Songs)

	section(&b, p, "SONGS PER CATEGORY:")
	rows := make([][]string, 0, len(s.TagCounts))
	for _, tc := range s.TagCounts {
		rows = append(rows, []string{tc.Name, strconv.Itoa(tc.Songs), strings.Repeat("#", tc.Songs/2)})
	}
	b.WriteString(RenderTable([]string{"Category", "Songs", ""}, rows, []Alignment{AlignLeft, AlignRight, AlignLeft}, opts.Fancy))
	fmt.Fprintf(&b, "\n\n  Total category marks: %d across %d songs\n", s.TotalMarks, s.Songs)
	fmt.Fprintf(&b, "  Average categories per song: %.2f\n\n", s.Average)

	section(&b, p, "CATEGORY COUNT DISTRIBUTION:")
	rows = rows[:0]
	for _, bucket := range s.Distribution {
		rows = append(rows, []string{strconv.Itoa(bucket.Tags), strconv.Itoa(bucket.Songs)})
	}
	b.WriteString(RenderTable([]string{"Categories", "Songs"}, rows, []Alignment{AlignRight, AlignRight}, opts.Fancy))
	fmt.Fprintf(&b, "\n\n  1 category:    %4d songs\n", s.OneTag)
	fmt.Fprintf(&b, "  2 categories:  %4d songs\n", s.TwoTags)
	fmt.Fprintf(&b, "  3+ categories: %4d songs\n", s.ThreePlus)
	fmt.Fprintf(&b, "  >= 2 total:    %4d / %d (%.1f%%)\n\n", s.AtLeastTwo, s.Songs, s.AtLeastTwoPercent())

	if len(s.Unmatched) > 0 {
		section(&b, p, fmt.Sprintf("UNMATCHED ARTISTS (defaulted by era): %d songs", s.UnmatchedSongs))
		rows = rows[:0]
		for _, ac := range s.Unmatched {
			rows = append(rows, []string{ac.Artist, "x" + strconv.Itoa(ac.Songs)})
		}
		b.WriteString(RenderTable([]string{"Artist", "Songs"}, rows, []Alignment{AlignLeft, AlignRight}, opts.Fancy))
		b.WriteString("\n\n")
	}

	if len(s.SingleTag) > 0 {
		section(&b, p, "SONGS WITH ONLY 1 CATEGORY:")
		b.WriteString(p.warn.Sprintf("%d songs still have a single category", len(s.SingleTag)))
		b.WriteString("\n")
		b.WriteString(sampleTable(s.SingleTag, opts.Fancy))
		b.WriteString("\n\n")
	} else {
		b.WriteString(p.good.Sprint("All songs have >= 2 categories!"))
		b.WriteString("\n\n")
	}

	if len(s.Head)+len(s.Tail) > 0 {
		section(&b, p, fmt.Sprintf("SAMPLE OUTPUT (first %d + last %d):", len(s.Head), len(s.Tail)))
		samples := append(append([]Sample(nil), s.Head...), s.Tail...)
		b.WriteString(sampleTable(samples, opts.Fancy))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, p painter, title string) {
	b.WriteString(rule)
	b.WriteByte('\n')
	b.WriteString(p.heading.Sprint(title))
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')
}

func sampleTable(samples []Sample, fancy bool) string {
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{strconv.Itoa(s.Line), s.Artist, s.Song, s.Year, JoinTags(s.Tags.Names())})
	}
	return RenderTable(
		[]string{"Line", "Artist", "Song", "Year", "Categories"},
		rows,
		[]Alignment{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignLeft},
		fancy,
	)
}

// RenderJSON writes the summary as indented JSON.
func RenderJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
