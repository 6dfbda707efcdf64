package tagger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"lomtag/internal/artists"
	"lomtag/internal/catalog"
	"lomtag/internal/classify"
	"lomtag/internal/config"
	"lomtag/internal/fileutil"
	"lomtag/internal/genre"
	"lomtag/internal/logging"
	"lomtag/internal/report"
)

// Options configures a Tagger.
type Options struct {
	Input  string
	Output string

	ArtistTable    string
	ReplaceBuiltin bool

	InputComma    rune
	OutputComma   rune
	IncludeHeader bool
	Backup        bool

	Workers  int
	Keywords []classify.KeywordRule
	Report   report.Options
}

// OptionsFromConfig maps configuration onto tagger options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Input:          cfg.Paths.Input,
		Output:         cfg.Paths.Output,
		ArtistTable:    cfg.Paths.ArtistTable,
		ReplaceBuiltin: cfg.Artists.ReplaceBuiltin,
		InputComma:     cfg.InputComma(),
		OutputComma:    cfg.OutputComma(),
		IncludeHeader:  cfg.Output.IncludeHeader,
		Backup:         cfg.Output.Backup,
		Workers:        cfg.Classify.Workers,
		Keywords:       KeywordRules(cfg),
		Report: report.Options{
			SampleHead: cfg.Report.SampleHead,
			SampleTail: cfg.Report.SampleTail,
		},
	}
}

// KeywordRules builds the title keyword rules from configuration.
func KeywordRules(cfg *config.Config) []classify.KeywordRule {
	return []classify.KeywordRule{
		{Tag: genre.HeavyRock, Words: cfg.Classify.HeavyRockKeywords},
		{Tag: genre.Dance, Words: cfg.Classify.DanceKeywords},
	}
}

// Tagger runs the batch classification.
type Tagger struct {
	opts       Options
	table      *artists.Table
	classifier *classify.Classifier
	logger     *slog.Logger
}

// New resolves the artist table and builds the classifier.
func New(opts Options, logger *slog.Logger) (*Tagger, error) {
	logger = logging.NewComponentLogger(logger, "tagger")

	table, err := artists.Resolve(opts.ArtistTable, opts.ReplaceBuiltin)
	if err != nil {
		return nil, fmt.Errorf("artist table: %w", err)
	}
	var classifyOpts []classify.Option
	if opts.Keywords != nil {
		classifyOpts = append(classifyOpts, classify.WithKeywords(opts.Keywords))
	}
	classifier, err := classify.New(table, classifyOpts...)
	if err != nil {
		return nil, err
	}

	attrs := []logging.Attr{logging.Int("artists", table.Len())}
	if opts.ArtistTable != "" {
		attrs = append(attrs,
			logging.String(logging.FieldPath, opts.ArtistTable),
			logging.Bool("replace_builtin", opts.ReplaceBuiltin),
		)
	}
	logger.Debug("artist table ready", logging.Args(attrs...)...)

	return &Tagger{opts: opts, table: table, classifier: classifier, logger: logger}, nil
}

// Classifier returns the classifier the tagger runs.
func (t *Tagger) Classifier() *classify.Classifier { return t.classifier }

// Table returns the resolved artist table.
func (t *Tagger) Table() *artists.Table { return t.table }

// SongFromRow extracts the classifier input from a catalog row.
func SongFromRow(row catalog.Row) classify.Song {
	return classify.Song{
		Artist: row.Artist(),
		Title:  row.Song(),
		Year:   classify.ParseYear(row.Year()),
		Era:    row.Era(),
		Prior:  row.Markers(),
	}
}

// Run classifies the input catalog and writes the output file.
func (t *Tagger) Run(ctx context.Context) (report.Summary, error) {
	runID := uuid.NewString()
	logger := t.logger.With(logging.String(logging.FieldRunID, runID))
	started := time.Now()

	if strings.TrimSpace(t.opts.Output) == "" {
		return report.Summary{}, errors.New("output path is required")
	}

	ds, err := catalog.Load(t.opts.Input, catalog.ReadOptions{Comma: t.opts.InputComma})
	if err != nil {
		return report.Summary{}, err
	}
	logger.Info("catalog loaded",
		logging.String(logging.FieldPath, t.opts.Input),
		logging.Int("songs", len(ds.Rows)),
	)

	songs := make([]classify.Song, len(ds.Rows))
	for i, row := range ds.Rows {
		songs[i] = SongFromRow(row)
		if raw := strings.TrimSpace(row.Year()); raw != "" && !songs[i].Year.Valid {
			logger.Debug("year not numeric, treated as unknown",
				logging.Int(logging.FieldLine, row.Line),
				logging.String("year", raw),
			)
		}
	}

	results, err := t.classifier.ClassifyAll(ctx, songs, t.opts.Workers)
	if err != nil {
		return report.Summary{}, fmt.Errorf("classify: %w", err)
	}

	collector := report.NewCollector(t.opts.Report)
	for i := range ds.Rows {
		row := &ds.Rows[i]
		res := results[i]
		collector.Add(report.Entry{
			Line:     row.Line,
			Artist:   row.Artist(),
			Song:     row.Song(),
			Year:     row.Year(),
			Original: songs[i].Prior,
			Result:   res,
		})
		row.SetMarkers(res.Tags)
	}

	var backup string
	if t.opts.Backup {
		backup, err = fileutil.BackupExisting(t.opts.Output)
		if err != nil {
			return report.Summary{}, err
		}
		if backup != "" {
			logger.Info("previous output backed up", logging.String(logging.FieldPath, backup))
		}
	}

	if err := catalog.Save(t.opts.Output, ds, catalog.WriteOptions{
		Comma:  t.opts.OutputComma,
		Header: t.opts.IncludeHeader,
	}); err != nil {
		return report.Summary{}, fmt.Errorf("write output: %w", err)
	}

	summary := collector.Summary()
	summary.RunID = runID
	summary.Input = t.opts.Input
	summary.Output = t.opts.Output
	summary.Backup = backup

	logger.Info("classification complete",
		logging.String(logging.FieldPath, t.opts.Output),
		logging.Int("songs", summary.Songs),
		logging.Int("changed", summary.Changed),
		logging.Int("unmatched_songs", summary.UnmatchedSongs),
		logging.Duration("elapsed", time.Since(started)),
	)
	if len(summary.SingleTag) > 0 {
		logger.Warn("songs left with a single tag",
			logging.String(logging.FieldEventType, "single_tag"),
			logging.Int("songs", len(summary.SingleTag)),
		)
	}
	return summary, nil
}
