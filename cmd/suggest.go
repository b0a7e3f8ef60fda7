package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/worklog/internal/validate"
)

// suggestCmd represents the suggest command.
var suggestCmd = &cobra.Command{
	Use:   "suggest FIELD",
	Short: "List distinct label values by frequency",
	Long: `List the distinct values of a label field ordered by how often they
occur, most frequent first. FIELD is one of task, project or category.
Drives autocomplete in clients.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"task", "project", "category"},
	RunE:      runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	field, err := validate.SuggestionField(args[0])
	if err != nil {
		return err
	}

	values, err := ctx.Service.RankSuggestions(field)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(values)
	}
	for _, v := range values {
		ctx.Formatter.Println(v)
	}
	return nil
}
