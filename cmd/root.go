package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/starter-coder/File-Sorter/pkg/config"
	"github.com/starter-coder/File-Sorter/pkg/logger"
)

var (
	cfgFile  string
	logLevel string
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-sorter",
	Short: "Sort files into category folders by extension",
	Long: `File Sorter moves every file of a source folder (recursively) into
category folders of a destination folder:

- Music, Documents, Videos, Compressed, Photos, Programs, Miscellaneous
- the category is picked from the file extension, ignoring case
- existing files are never overwritten; name clashes become name(1).ext, name(2).ext, ...
- the emptied source folder can be deleted afterwards`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.file-sorter/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug logs")
}

// setup loads the config and the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	if verbose {
		level = "debug"
	}

	// the TUI owns the terminal, so it logs to the file only
	if cmd.Name() == tuiCmd.Name() {
		return initTUILogger(level, cfg.Logging.File)
	}
	return logger.Init(level, cfg.Logging.File)
}
