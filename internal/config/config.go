package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julien-sobczak/the-noteformatter/pkg/resync"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the file searched in the working directory (then $HOME).
const ConfigFile = ".noteformatter.toml"

// Default configuration when no file is present.
const DefaultConfig = `
[core]
root = "~/notes"

[format]
words = true
lists = true
`

var (
	// Lazy-load configuration and ensure a single read
	configOnce      resync.Once
	configSingleton *Config
)

// Note: Fields must be public for toml package to unmarshall
type Config struct {
	Core   CoreConfig
	Format FormatConfig
}

type CoreConfig struct {
	// Root directory containing the note files
	Root string
}

type FormatConfig struct {
	// Words enables the inline bold/italic formatter
	Words bool
	// Lists enables the list formatter
	Lists bool
}

// CurrentConfig returns the configuration, read once from disk.
func CurrentConfig() *Config {
	configOnce.Do(func() {
		config, err := ReadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		configSingleton = config
	})
	return configSingleton
}

// ReadConfig loads the configuration file, falling back on defaults when no
// file exists.
func ReadConfig() (*Config, error) {
	raw := []byte(DefaultConfig)

	path, found := locateConfigFile()
	if found {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config file %q: %w", path, err)
		}
		raw = content
	}

	config := &Config{
		Format: FormatConfig{
			Words: true,
			Lists: true,
		},
	}
	if err := toml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("unable to parse config file %q: %w", path, err)
	}
	config.Core.Root = expandHome(config.Core.Root)
	return config, nil
}

func locateConfigFile() (string, bool) {
	if cwd, err := os.Getwd(); err == nil {
		path := filepath.Join(cwd, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Reset clears the singleton. Useful in tests.
func Reset() {
	configOnce.Reset()
	configSingleton = nil
}
