package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/folio/internal/core/config"
)

// Flags holds the global flags shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	tui *TuiCmd
}

// SetConfig stores the loaded config and applies the TUI flag overrides to it.
func (f *Flags) SetConfig(cfg *config.Config) {
	f.Config = cfg
	if f.tui != nil {
		f.tui.ApplyOverrides()
	}
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "folio", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "folio")
}
