package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/starter-coder/File-Sorter/pkg/config"
	"github.com/starter-coder/File-Sorter/pkg/logger"
	"github.com/starter-coder/File-Sorter/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Pick folders and sort interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		source, _ := cmd.Flags().GetString("source")
		dest, _ := cmd.Flags().GetString("dest")

		return tui.Run(&tui.Config{
			Source:      source,
			Destination: dest,
			VerifyCopy:  cfg.Sorter.VerifyCopy,
			Journal:     cfg.Journal.Enabled,
			JournalPath: cfg.Journal.Path,
		})
	},
}

func initTUILogger(level, file string) error {
	var w io.Writer = io.Discard
	if file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
	}
	logger.InitWriter(level, w)
	return nil
}

func init() {
	tuiCmd.Flags().StringP("source", "s", "", "initial source folder")
	tuiCmd.Flags().StringP("dest", "t", "", "initial destination folder")

	rootCmd.AddCommand(tuiCmd)
}
