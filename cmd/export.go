package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/export"
	"github.com/manav03panchal/worklog/internal/parser"
)

// Export command flags.
var (
	exportFlagFrom   string
	exportFlagTo     string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"ex"},
	Short:   "Export entries as CSV",
	Long: `Export entries in a date range as a spreadsheet-compatible CSV file
(UTF-8 with BOM). The range may span at most 12 calendar months.

Examples:
  worklog export --from 2026-01-01 --to 2026-06-30
  worklog export --from "last month" --to today -o report.csv`,
	RunE: runExportCmd,
}

func init() {
	exportCmd.Flags().StringVar(&exportFlagFrom, "from", "", "Start of date range (required)")
	exportCmd.Flags().StringVar(&exportFlagTo, "to", "", "End of date range (required)")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "",
		"Output file (default: time_tracking_<from>_<to>.csv)")
	exportCmd.MarkFlagRequired("from")
	exportCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(exportCmd)
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	from, err := parser.ParseDate(exportFlagFrom)
	if err != nil {
		return err
	}
	to, err := parser.ParseDate(exportFlagTo)
	if err != nil {
		return err
	}

	data, err := ctx.Service.ExportCSV(from, to)
	if err != nil {
		return err
	}

	filename := exportFlagOutput
	if filename == "" {
		filename = export.Filename(from, to)
	}

	if filename == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return err
	}
	if !ctx.IsJSON() {
		ctx.CLIFormatter().Success("Exported to " + filename)
	}
	return nil
}
