package main

import (
	"github.com/spf13/cobra"

	"lomtag/internal/report"
)

// renderTable draws a table for the command's stdout, using box drawing only
// when stdout is a terminal.
func renderTable(cmd *cobra.Command, headers []string, rows [][]string, aligns []report.Alignment) string {
	return report.RenderTable(headers, rows, aligns, report.IsTerminal(cmd.OutOrStdout()))
}
