package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/starter-coder/File-Sorter/internal"
)

type Config struct {
	Logging struct {
		Level string
		File  string
	}
	Journal struct {
		Enabled bool
		Path    string
	}
	Sorter struct {
		VerifyCopy bool `mapstructure:"verify_copy"`
	}
}

var cfg Config

// Load reads config.yaml from the usual locations, or from cfgFile when it
// is set. A missing file is not an error; defaults apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath("$HOME/.file-sorter")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/file-sorter")
	}

	v.SetEnvPrefix("FILE_SORTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", internal.DefaultLogLevel)
	v.SetDefault("logging.file", "")
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", internal.DefaultJournalPath)
	v.SetDefault("sorter.verify_copy", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return nil, err
	}

	journalPath, err := ExpandPath(loaded.Journal.Path)
	if err != nil {
		return nil, err
	}
	loaded.Journal.Path = journalPath

	cfg = loaded
	return &cfg, nil
}

func Get() *Config {
	return &cfg
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == '\\') {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
