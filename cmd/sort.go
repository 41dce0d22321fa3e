package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/starter-coder/File-Sorter/app"
	"github.com/starter-coder/File-Sorter/pkg/config"
	"github.com/starter-coder/File-Sorter/pkg/logger"
)

var sortCmd = &cobra.Command{
	Use:   "sort <source> <destination>",
	Short: "Move files from source into category folders of destination",
	Long: `Walks the source folder recursively and moves every file into
<destination>/<Category>/, creating category folders as needed.
Files that cannot be moved are listed at the end; the rest are still moved.
With --delete-source the source folder is removed afterwards, but only when
no files are left in it.`,
	Args: cobra.ExactArgs(2),
	RunE: runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	deleteSource, _ := cmd.Flags().GetBool("delete-source")
	noJournal, _ := cmd.Flags().GetBool("no-journal")

	opts := &app.SortOptions{
		Source:       args[0],
		Destination:  args[1],
		DeleteSource: deleteSource,
		VerifyCopy:   cfg.Sorter.VerifyCopy,
		Journal:      cfg.Journal.Enabled && !noJournal,
		JournalPath:  cfg.Journal.Path,
	}

	logger.Get().Info().Msgf("Source: %s", opts.Source)
	logger.Get().Info().Msgf("Destination: %s", opts.Destination)

	report, err := app.RunSort(opts)
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.String())
	return nil
}

func init() {
	sortCmd.Flags().BoolP("delete-source", "d", false, "delete the source folder after sorting if it is empty of files")
	sortCmd.Flags().Bool("no-journal", false, "do not record moves even if the journal is enabled")

	rootCmd.AddCommand(sortCmd)
}
