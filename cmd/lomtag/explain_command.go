package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lomtag/internal/classify"
	"lomtag/internal/genre"
	"lomtag/internal/tagger"
)

type explanation struct {
	Artist string          `json:"artist"`
	Song   string          `json:"song"`
	Year   string          `json:"year,omitempty"`
	Era    string          `json:"era,omitempty"`
	Prior  genre.Set       `json:"prior"`
	Result classify.Result `json:"result"`
}

func newExplainCommand(ctx *commandContext) *cobra.Command {
	var (
		artist     string
		song       string
		year       string
		era        string
		prior      string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show how a single song would be tagged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			priorTags, err := genre.ParseList(prior)
			if err != nil {
				return fmt.Errorf("--prior: %w", err)
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			tg, err := tagger.New(tagger.OptionsFromConfig(cfg), logger)
			if err != nil {
				return err
			}

			input := classify.Song{
				Artist: artist,
				Title:  song,
				Year:   classify.ParseYear(year),
				Era:    era,
				Prior:  priorTags,
			}
			res := tg.Classifier().Classify(input)

			if jsonOutput {
				return writeJSON(cmd, explanation{
					Artist: artist,
					Song:   song,
					Year:   input.Year.String(),
					Era:    classify.NormalizeEra(era),
					Prior:  priorTags,
					Result: res,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatExplanation(input, res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&artist, "artist", "a", "", "Artist column value")
	cmd.Flags().StringVarP(&song, "song", "s", "", "Song title")
	cmd.Flags().StringVarP(&year, "year", "y", "", "Release year")
	cmd.Flags().StringVar(&era, "era", "", "Era column value (vintage, vcr)")
	cmd.Flags().StringVar(&prior, "prior", "", "Comma separated tags the row already carries")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the explanation as JSON")
	_ = cmd.MarkFlagRequired("artist")
	return cmd
}

func formatExplanation(song classify.Song, res classify.Result) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-11s %s\n", label+":", value)
	}
	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}

	line("Artist", orDash(song.Artist))
	line("Song", orDash(song.Title))
	line("Year", orDash(song.Year.String()))
	line("Era", orDash(classify.NormalizeEra(song.Era)))
	line("Period", res.Period.String())
	if m := res.Trace.Match; m != nil {
		line("Artist key", fmt.Sprintf("%s %s", m.Key, m.Set()))
	} else {
		line("Artist key", "no match")
	}
	line("Exception", orDash(res.Trace.Exception))
	line("Keywords", res.Trace.KeywordTags.String())
	line("Fallback", yesNo(res.Trace.Fallback))
	line("Style", res.Style.String())
	line("Preserved", res.Preserved.String())
	line("Top-up", res.TopUp.String())
	line("Tags", res.Tags.String())
	return b.String()
}
