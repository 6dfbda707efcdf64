package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lomtag/internal/artists"
	"lomtag/internal/report"
)

func newArtistsCommand(ctx *commandContext) *cobra.Command {
	artistsCmd := &cobra.Command{
		Use:   "artists",
		Short: "Inspect the artist genre table",
	}

	artistsCmd.AddCommand(newArtistsListCommand(ctx))
	artistsCmd.AddCommand(newArtistsMatchCommand(ctx))
	artistsCmd.AddCommand(newArtistsExportCommand(ctx))

	return artistsCmd
}

func (c *commandContext) artistTable() (*artists.Table, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return artists.Resolve(cfg.Paths.ArtistTable, cfg.Artists.ReplaceBuiltin)
}

type artistEntryJSON struct {
	Key  string   `json:"key"`
	Tags []string `json:"tags"`
}

func entryTagNames(e artists.Entry) []string {
	names := make([]string, len(e.Tags))
	for i, tag := range e.Tags {
		names[i] = tag.String()
	}
	return names
}

func newArtistsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every artist key in definition order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ctx.artistTable()
			if err != nil {
				return err
			}
			entries := table.Entries()

			if jsonOutput {
				payload := make([]artistEntryJSON, len(entries))
				for i, e := range entries {
					payload[i] = artistEntryJSON{Key: e.Key, Tags: entryTagNames(e)}
				}
				return writeJSON(cmd, payload)
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{strconv.Itoa(i + 1), e.Key, report.JoinTags(entryTagNames(e))}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(cmd, []string{"#", "Key", "Tags"}, rows, []report.Alignment{report.AlignRight}))
			fmt.Fprintf(out, "%d artists\n", len(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the table as JSON")
	return cmd
}

func newArtistsMatchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "match NAME",
		Short: "Show which artist keys match a name and which one wins",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ctx.artistTable()
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			candidates := table.Candidates(name)

			if jsonOutput {
				if candidates == nil {
					candidates = []artists.Match{}
				}
				return writeJSON(cmd, struct {
					Artist     string          `json:"artist"`
					Candidates []artists.Match `json:"candidates"`
				}{Artist: name, Candidates: candidates})
			}

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintf(out, "No artist key matches %q; the era default applies.\n", name)
				return nil
			}
			rows := make([][]string, len(candidates))
			for i, m := range candidates {
				winner := ""
				if i == 0 {
					winner = "*"
				}
				rows[i] = []string{winner, m.Key, strconv.Itoa(m.Length), m.Set().String()}
			}
			fmt.Fprintln(out, renderTable(cmd,
				[]string{"", "Key", "Length", "Tags"},
				rows,
				[]report.Alignment{report.AlignLeft, report.AlignLeft, report.AlignRight},
			))
			fmt.Fprintf(out, "Winner: %s %s\n", candidates[0].Key, candidates[0].Set())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the matches as JSON")
	return cmd
}

func newArtistsExportCommand(ctx *commandContext) *cobra.Command {
	var format string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active artist table in the artist table file format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := ctx.artistTable()
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "toml", "":
				data, err = artists.Encode(table.Entries())
			case "yaml", "yml":
				data, err = artists.EncodeYAML(table.Entries())
			default:
				return errors.New("--format must be toml or yaml")
			}
			if err != nil {
				return err
			}

			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("write artist table: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d artists to %s\n", table.Len(), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format: toml or yaml")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
