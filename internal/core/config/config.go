// Package config handles configuration loading and validation for folio.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	TUI          TUIConfig          `yaml:"tui"`
	Content      ContentConfig      `yaml:"content"`
	Presentation PresentationConfig `yaml:"presentation"`
	Comments     CommentsConfig     `yaml:"comments"`
	DataDir      string             `yaml:"-"` // set by caller, not from config file
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme      string       `yaml:"theme"`
	ScrollStep int          `yaml:"scroll_step"` // lines moved per arrow key or wheel notch
	Motion     MotionConfig `yaml:"motion"`
}

// MotionConfig controls scroll-linked section motion.
type MotionConfig struct {
	Disabled bool `yaml:"disabled"`
	MaxShift int  `yaml:"max_shift"` // columns a section may drift either way
}

// ContentConfig points at the guide document and its assets.
type ContentConfig struct {
	Path      string `yaml:"path"`       // YAML document; empty uses the built-in guide
	AssetsDir string `yaml:"assets_dir"` // root that image paths are resolved against
}

// PresentationConfig overrides the document's presentation embed.
type PresentationConfig struct {
	Title       string `yaml:"title"`
	URL         string `yaml:"url"`
	OpenCommand string `yaml:"open_command"` // shell template, receives .URL and .Title
}

// CommentsConfig holds comment board limits.
type CommentsConfig struct {
	AuthorLimit   int    `yaml:"author_limit"`
	ContentLimit  int    `yaml:"content_limit"`
	DefaultAuthor string `yaml:"default_author"` // prefilled into new comment drafts
}

// Defaults for zero values.
const (
	DefaultTheme        = "tokyo-night"
	DefaultScrollStep   = 1
	DefaultMaxShift     = 6
	DefaultAuthorLimit  = 40
	DefaultContentLimit = 500
	DefaultAssetsDir    = "public"

	maxMotionShift = 40
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:      DefaultTheme,
			ScrollStep: DefaultScrollStep,
			Motion: MotionConfig{
				MaxShift: DefaultMaxShift,
			},
		},
		Content: ContentConfig{
			AssetsDir: DefaultAssetsDir,
		},
		Presentation: PresentationConfig{
			OpenCommand: defaultOpenCommand(runtime.GOOS),
		},
		Comments: CommentsConfig{
			AuthorLimit:  DefaultAuthorLimit,
			ContentLimit: DefaultContentLimit,
		},
	}
}

// defaultOpenCommand returns the platform URL opener as a command template.
func defaultOpenCommand(goos string) string {
	switch goos {
	case "darwin":
		return "open {{ .URL | shq }}"
	case "windows":
		return "cmd /c start \"\" {{ .URL | shq }}"
	default:
		return "xdg-open {{ .URL | shq }}"
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
			cfg.resolvePaths(filepath.Dir(configPath))
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// resolvePaths makes relative content paths relative to the config file directory.
func (c *Config) resolvePaths(base string) {
	if c.Content.Path != "" && !filepath.IsAbs(c.Content.Path) {
		c.Content.Path = filepath.Join(base, c.Content.Path)
	}
	if c.Content.AssetsDir != "" && c.Content.AssetsDir != DefaultAssetsDir && !filepath.IsAbs(c.Content.AssetsDir) {
		c.Content.AssetsDir = filepath.Join(base, c.Content.AssetsDir)
	}
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.ScrollStep == 0 {
		c.TUI.ScrollStep = defaults.TUI.ScrollStep
	}
	if c.TUI.Motion.MaxShift == 0 {
		c.TUI.Motion.MaxShift = defaults.TUI.Motion.MaxShift
	}
	if c.Content.AssetsDir == "" {
		c.Content.AssetsDir = defaults.Content.AssetsDir
	}
	if c.Presentation.OpenCommand == "" {
		c.Presentation.OpenCommand = defaults.Presentation.OpenCommand
	}
	if c.Comments.AuthorLimit == 0 {
		c.Comments.AuthorLimit = defaults.Comments.AuthorLimit
	}
	if c.Comments.ContentLimit == 0 {
		c.Comments.ContentLimit = defaults.Comments.ContentLimit
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.TUI.ScrollStep < 1 {
		return fmt.Errorf("tui.scroll_step must be at least 1")
	}

	if c.TUI.Motion.MaxShift < 0 || c.TUI.Motion.MaxShift > maxMotionShift {
		return fmt.Errorf("tui.motion.max_shift must be between 0 and %d", maxMotionShift)
	}

	if c.Comments.AuthorLimit < 1 {
		return fmt.Errorf("comments.author_limit must be at least 1")
	}

	if c.Comments.ContentLimit < 1 {
		return fmt.Errorf("comments.content_limit must be at least 1")
	}

	if len([]rune(c.Comments.DefaultAuthor)) > c.Comments.AuthorLimit {
		return fmt.Errorf("comments.default_author exceeds comments.author_limit")
	}

	return nil
}

// MotionShift returns the effective shift limit, zero when motion is disabled.
func (c *Config) MotionShift() int {
	if c.TUI.Motion.Disabled {
		return 0
	}
	return c.TUI.Motion.MaxShift
}

// LogFile returns the default log file path inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "folio.log")
}
