package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/model"
	"github.com/manav03panchal/worklog/internal/parser"
)

// Edit command flags.
var (
	editFlagTask     string
	editFlagProject  string
	editFlagCategory string
	editFlagDate     string
	editFlagStart    string
	editFlagEnd      string
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Update fields of an entry",
	Long: `Update individual fields of an entry. Only the given flags change;
everything else keeps its prior value. The duration is always recomputed
from the resulting start and end times.

Examples:
  worklog edit 0198ba0e-... --end 18:00
  worklog edit 0198ba0e-... --project backend --category engineering`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editFlagTask, "task", "t", "", "Task name")
	editCmd.Flags().StringVarP(&editFlagProject, "project", "p", "", "Project name")
	editCmd.Flags().StringVarP(&editFlagCategory, "category", "c", "", "Category")
	editCmd.Flags().StringVar(&editFlagDate, "date", "", "Work date")
	editCmd.Flags().StringVar(&editFlagStart, "start", "", "Start time (HH:MM)")
	editCmd.Flags().StringVar(&editFlagEnd, "end", "", "End time (HH:MM)")

	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	var patch model.EntryPatch

	if cmd.Flags().Changed("task") {
		patch.TaskName = &editFlagTask
	}
	if cmd.Flags().Changed("project") {
		patch.ProjectName = &editFlagProject
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &editFlagCategory
	}
	if cmd.Flags().Changed("date") {
		d, err := parser.ParseDate(editFlagDate)
		if err != nil {
			return err
		}
		patch.WorkDate = &d
	}
	if cmd.Flags().Changed("start") {
		t, err := parser.ParseTimeOfDay(editFlagStart)
		if err != nil {
			return err
		}
		patch.StartTime = &t
	}
	if cmd.Flags().Changed("end") {
		t, err := parser.ParseTimeOfDay(editFlagEnd)
		if err != nil {
			return err
		}
		patch.EndTime = &t
	}

	entry, err := ctx.Service.UpdateEntry(args[0], patch)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(entry)
	}
	ctx.CLIFormatter().Success("Updated " + entry.TaskName)
	return nil
}
