package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starter-coder/File-Sorter/app"
	"github.com/starter-coder/File-Sorter/internal"
	"github.com/starter-coder/File-Sorter/pkg/config"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent moves recorded in the journal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			return fmt.Errorf("--limit must be greater than 0")
		}

		records, err := app.History(config.Get().Journal.Path, limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Journal is empty")
			return nil
		}

		for _, r := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-13s %s -> %s  (run %.8s)\n",
				r.MovedAt.Format("2006-01-02 15:04:05"), r.Category, r.Source, r.Destination, r.RunID)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", internal.DefaultHistoryLimit, "number of entries to show")

	rootCmd.AddCommand(historyCmd)
}
