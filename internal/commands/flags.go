package commands

import (
	"os"
	"path/filepath"

	"github.com/hay-kot/acrodrill/internal/core/config"
)

// StdinSource is the --source value that reads a CSV from standard input.
const StdinSource = "-"

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	Sources    []string // overrides the configured sources when set

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "acrodrill", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "acrodrill")
}

// FileSources returns the --source values that name files, dropping the
// stdin marker.
func (f *Flags) FileSources() []string {
	out := make([]string, 0, len(f.Sources))
	for _, s := range f.Sources {
		if s != StdinSource {
			out = append(out, s)
		}
	}
	return out
}

// WantsStdin reports whether a card source should be read from stdin.
func (f *Flags) WantsStdin() bool {
	for _, s := range f.Sources {
		if s == StdinSource {
			return true
		}
	}
	return false
}
