package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/errors"
	"github.com/manav03panchal/worklog/internal/parser"
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an entry",
	Long: `Delete a single entry by its ID. Deletion is permanent; there is no
archive or undo.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

// Purge command flags.
var (
	purgeFlagFrom  string
	purgeFlagTo    string
	purgeFlagForce bool
)

// purgeCmd represents the purge command.
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all entries in a date range",
	Long: `Delete every entry whose work date falls in the inclusive range.
The delete is atomic: either all qualifying entries are removed or none.

Examples:
  worklog purge --from 2025-01-01 --to 2025-01-31
  worklog purge --from "last month" --to today --yes`,
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().StringVar(&purgeFlagFrom, "from", "", "Start of date range")
	purgeCmd.Flags().StringVar(&purgeFlagTo, "to", "", "End of date range")
	purgeCmd.Flags().BoolVarP(&purgeFlagForce, "yes", "y", false, "Skip the confirmation prompt")
	purgeCmd.MarkFlagRequired("from")
	purgeCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(purgeCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := ctx.Service.DeleteEntry(args[0]); err != nil {
		return err
	}
	if !ctx.IsJSON() {
		ctx.CLIFormatter().Success("Deleted entry " + args[0])
	}
	return nil
}

func runPurge(cmd *cobra.Command, args []string) error {
	from, err := parser.ParseDate(purgeFlagFrom)
	if err != nil {
		return err
	}
	to, err := parser.ParseDate(purgeFlagTo)
	if err != nil {
		return err
	}

	if !purgeFlagForce {
		fmt.Fprintf(os.Stderr, "Delete all entries from %s to %s? [y/N] ", from, to)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			return errors.NewValidationError("purge aborted", "Re-run with --yes to skip the prompt")
		}
	}

	result, err := ctx.Service.BulkDelete(from, to)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(result)
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted %d entries", result.DeletedCount))
	return nil
}
