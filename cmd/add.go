package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/parser"
	"github.com/manav03panchal/worklog/internal/timecalc"
)

// Add command flags.
var (
	addFlagTask     string
	addFlagProject  string
	addFlagCategory string
	addFlagDate     string
	addFlagStart    string
	addFlagEnd      string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a unit of work",
	Long: `Record one unit of work with its task, project, category, date and
time span. The duration is derived from the start and end times; work
spanning midnight is handled.

Examples:
  worklog add -t "Code review" -p backend -c engineering --date today --start 14:00 --end 15:30
  worklog add -t "Night deploy" -p ops -c engineering --date yesterday --start 23:30 --end 01:00`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagTask, "task", "t", "", "Task name")
	addCmd.Flags().StringVarP(&addFlagProject, "project", "p", "", "Project name")
	addCmd.Flags().StringVarP(&addFlagCategory, "category", "c", "", "Category")
	addCmd.Flags().StringVar(&addFlagDate, "date", "today", "Work date (natural language accepted)")
	addCmd.Flags().StringVar(&addFlagStart, "start", "", "Start time (HH:MM)")
	addCmd.Flags().StringVar(&addFlagEnd, "end", "", "End time (HH:MM)")
	addCmd.MarkFlagRequired("task")
	addCmd.MarkFlagRequired("project")
	addCmd.MarkFlagRequired("category")
	addCmd.MarkFlagRequired("start")
	addCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	workDate, err := parser.ParseDate(addFlagDate)
	if err != nil {
		return err
	}
	start, err := parser.ParseTimeOfDay(addFlagStart)
	if err != nil {
		return err
	}
	end, err := parser.ParseTimeOfDay(addFlagEnd)
	if err != nil {
		return err
	}

	entry := model.NewWorkEntry(addFlagTask, addFlagProject, addFlagCategory, workDate, start, end)
	created, err := ctx.Service.CreateEntry(entry)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(created)
	}
	cli := ctx.CLIFormatter()
	cli.Success("Recorded " + created.TaskName + " (" + timecalc.FormatDuration(created.DurationSeconds) + ")")
	cli.Muted("  id: " + created.ID)
	return nil
}
