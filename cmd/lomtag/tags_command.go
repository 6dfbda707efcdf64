package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lomtag/internal/genre"
	"lomtag/internal/report"
)

type tagJSON struct {
	Column    int       `json:"column"`
	Tag       genre.Tag `json:"tag"`
	Name      string    `json:"name"`
	Class     string    `json:"class"`
	Preserved bool      `json:"preserved"`
}

func newTagsCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "tags",
		Short:       "List the tag taxonomy in column order",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			all := genre.All()
			if jsonOutput {
				payload := make([]tagJSON, len(all))
				for i, tag := range all {
					payload[i] = tagJSON{
						Column:    i + 1,
						Tag:       tag,
						Name:      tag.String(),
						Class:     tag.Class().String(),
						Preserved: genre.Preserved.Has(tag),
					}
				}
				return writeJSON(cmd, payload)
			}

			rows := make([][]string, len(all))
			for i, tag := range all {
				rows[i] = []string{
					strconv.Itoa(i + 1),
					tag.String(),
					tag.Slug(),
					tag.Class().String(),
					yesNo(genre.Preserved.Has(tag)),
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd,
				[]string{"#", "Tag", "Slug", "Class", "Preserved"},
				rows,
				[]report.Alignment{report.AlignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the taxonomy as JSON")
	return cmd
}
