package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/starter-coder/File-Sorter/app"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <folder>",
	Short: "Delete a folder and everything in it",
	Long: `Deletes the folder entirely. Run "file-sorter count" first and only
proceed when it reports 0 files.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	path := args[0]
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		count, err := app.RunCount(nil, []string{path})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Delete %s and its %d file(s)? [y/N] ", path, count)

		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}

	if err := app.RunDelete(nil, path); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", path)
	return nil
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(deleteCmd)
}
