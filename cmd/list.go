package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/parser"
	"github.com/manav03panchal/worklog/internal/tracker"
)

// List command flags.
var (
	listFlagWeekOf string
	listFlagFrom   string
	listFlagTo     string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded entries",
	Long: `List entries ordered by work date and start time. --week-of selects the
Monday through Friday of the week containing the given date and takes
precedence over --from/--to. With no filter, all entries are listed.

Examples:
  worklog list
  worklog list --week-of today
  worklog list --from "last monday" --to today`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlagWeekOf, "week-of", "w", "", "Show the work week containing this date")
	listCmd.Flags().StringVar(&listFlagFrom, "from", "", "Start of date range")
	listCmd.Flags().StringVar(&listFlagTo, "to", "", "End of date range")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	weekOf, err := parser.ParseDate(listFlagWeekOf)
	if err != nil {
		return err
	}
	from, err := parser.ParseDate(listFlagFrom)
	if err != nil {
		return err
	}
	to, err := parser.ParseDate(listFlagTo)
	if err != nil {
		return err
	}

	entries, err := ctx.Service.ListEntries(tracker.ListFilter{WeekOf: weekOf, From: from, To: to})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(entries)
	}
	ctx.CLIFormatter().PrintEntries(entries)
	return nil
}
