package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starter-coder/File-Sorter/app"
)

var countCmd = &cobra.Command{
	Use:   "count <folders...>",
	Short: "Count the files left in folders",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := app.RunCount(nil, args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "File count = %d\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
