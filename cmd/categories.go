package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starter-coder/File-Sorter/pkg/category"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category folders and the extensions that go into them",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range category.All() {
			exts := category.Extensions(c)
			if len(exts) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s everything else\n", c)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", c, strings.Join(exts, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
