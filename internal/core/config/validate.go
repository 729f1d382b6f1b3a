package config

import (
	"fmt"
	"os"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/core/styles"
	"github.com/colonyops/folio/pkg/tmpl"
	"github.com/hay-kot/criterio"
)

// OpenTemplateData defines available fields for the presentation open_command template.
type OpenTemplateData struct {
	URL   string // Presentation URL
	Title string // Presentation title
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// template syntax, theme names, and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("presentation.open_command", c.Presentation.OpenCommand, validateOpenCommand),
		criterio.Run("content.path", c.Content.Path, documentLoads),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if _, err := os.Stat(c.Content.AssetsDir); os.IsNotExist(err) {
		warnings = append(warnings, ValidationWarning{
			Category: "Content",
			Item:     "assets_dir",
			Message:  fmt.Sprintf("%s does not exist; images render as placeholders", c.Content.AssetsDir),
		})
	}

	if c.TUI.Motion.Disabled {
		warnings = append(warnings, ValidationWarning{
			Category: "TUI",
			Item:     "motion",
			Message:  "scroll-linked motion is disabled",
		})
	}

	return warnings
}

// validateFileAccess checks config file, content file, data and assets directories.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("content.path", c.Content.Path, isReadableFile),
		criterio.Run("content.assets_dir", c.Content.AssetsDir, isDirectoryOrNotExist),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isReadableFile validates that an optional path is an existing regular file.
func isReadableFile(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory, not a file")
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func validateOpenCommand(cmd string) error {
	if _, err := tmpl.Render(cmd, OpenTemplateData{URL: "https://example.com", Title: "example"}); err != nil {
		return fmt.Errorf("template error: %w", err)
	}
	return nil
}

// documentLoads parses and validates a custom content document.
func documentLoads(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil // reported by validateFileAccess
	}
	if _, err := content.Load(path); err != nil {
		return err
	}
	return nil
}
