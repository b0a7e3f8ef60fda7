package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/parser"
	"github.com/manav03panchal/worklog/internal/tracker"
	"github.com/manav03panchal/worklog/internal/validate"
)

// Report command flags.
var (
	reportFlagFrom       string
	reportFlagTo         string
	reportFlagGroupBy    string
	reportFlagProjects   []string
	reportFlagCategories []string
)

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize time per project or category",
	Long: `Sum durations over a date range grouped by project or category, with
each group's percentage share of the total. Optional allow-lists narrow
the entries counted; both apply as row filters regardless of grouping.

Examples:
  worklog report --from 2026-08-01 --to 2026-08-31
  worklog report --from "last month" --to today --group-by category
  worklog report --from 2026-08-01 --to 2026-08-31 --projects backend,website`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFlagFrom, "from", "", "Start of date range (required)")
	reportCmd.Flags().StringVar(&reportFlagTo, "to", "", "End of date range (required)")
	reportCmd.Flags().StringVarP(&reportFlagGroupBy, "group-by", "g", "project",
		"Grouping dimension: project or category")
	reportCmd.Flags().StringSliceVar(&reportFlagProjects, "projects", nil,
		"Only count entries for these projects")
	reportCmd.Flags().StringSliceVar(&reportFlagCategories, "categories", nil,
		"Only count entries for these categories")
	reportCmd.MarkFlagRequired("from")
	reportCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	from, err := parser.ParseDate(reportFlagFrom)
	if err != nil {
		return err
	}
	to, err := parser.ParseDate(reportFlagTo)
	if err != nil {
		return err
	}
	groupBy, err := validate.GroupBy(reportFlagGroupBy)
	if err != nil {
		return err
	}

	summary, err := ctx.Service.Summarize(tracker.SummaryQuery{
		From:       from,
		To:         to,
		GroupBy:    groupBy,
		Projects:   reportFlagProjects,
		Categories: reportFlagCategories,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(summary)
	}
	cli := ctx.CLIFormatter()
	cli.Title("Time by " + reportFlagGroupBy + " (" + from.String() + " to " + to.String() + ")")
	cli.PrintSummary(summary)
	return nil
}
