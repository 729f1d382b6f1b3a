package initcmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/folio/internal/core/config"
)

// ConfigOptions holds the answers collected by the wizard.
type ConfigOptions struct {
	Theme           string
	DefaultAuthor   string
	PresentationURL string
	ContentPath     string
	AssetsDir       string
	DisableMotion   bool
}

const configHeader = `# folio configuration
# Generated by 'folio init'. Run 'folio config validate' after editing.

`

// GenerateConfig builds a config from the defaults and the wizard answers.
func GenerateConfig(opts ConfigOptions) config.Config {
	cfg := config.DefaultConfig()
	if opts.Theme != "" {
		cfg.TUI.Theme = opts.Theme
	}
	if opts.AssetsDir != "" {
		cfg.Content.AssetsDir = opts.AssetsDir
	}
	cfg.TUI.Motion.Disabled = opts.DisableMotion
	cfg.Content.Path = opts.ContentPath
	cfg.Presentation.URL = opts.PresentationURL
	cfg.Comments.DefaultAuthor = opts.DefaultAuthor
	return cfg
}

// WriteConfig encodes cfg as YAML at path, creating parent directories.
func WriteConfig(cfg config.Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
