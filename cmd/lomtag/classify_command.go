package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lomtag/internal/config"
	"lomtag/internal/report"
	"lomtag/internal/tagger"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var (
		input       string
		output      string
		artistTable string
		workers     int
		jsonOutput  bool
		noHeader    bool
		backup      bool
	)

	cmd := &cobra.Command{
		Use:     "classify",
		Aliases: []string{"run"},
		Short:   "Classify every song in the catalog and write the tagged copy",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			local := *cfg
			if input != "" {
				if local.Paths.Input, err = config.ExpandPath(input); err != nil {
					return fmt.Errorf("resolve --input: %w", err)
				}
			}
			if output != "" {
				if local.Paths.Output, err = config.ExpandPath(output); err != nil {
					return fmt.Errorf("resolve --output: %w", err)
				}
			}
			if artistTable != "" {
				if local.Paths.ArtistTable, err = config.ExpandPath(artistTable); err != nil {
					return fmt.Errorf("resolve --artist-table: %w", err)
				}
			}
			if cmd.Flags().Changed("workers") {
				local.Classify.Workers = workers
			}
			if noHeader {
				local.Output.IncludeHeader = false
			}
			if backup {
				local.Output.Backup = true
			}
			if jsonOutput {
				local.Report.Format = config.ReportFormatJSON
			}
			if err := local.Validate(); err != nil {
				return err
			}

			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			tg, err := tagger.New(tagger.OptionsFromConfig(&local), logger)
			if err != nil {
				return err
			}
			summary, err := tg.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if local.Report.Format == config.ReportFormatJSON {
				return report.RenderJSON(out, summary)
			}
			return report.Render(out, summary, report.RenderOptions{
				Color: report.ResolveColor(local.Report.Color, out),
				Fancy: report.IsTerminal(out),
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Catalog to read (overrides paths.input)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (overrides paths.output)")
	cmd.Flags().StringVar(&artistTable, "artist-table", "", "Artist table file (overrides paths.artist_table)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Parallel classification workers (overrides classify.workers)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "Omit the header row from the output")
	cmd.Flags().BoolVar(&backup, "backup", false, "Copy an existing output file to <output>.bak first")
	return cmd
}
