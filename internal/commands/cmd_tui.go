package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/core/logging"
	"github.com/colonyops/folio/internal/tui"
)

// ErrNoTerminal is returned when the TUI is started without a terminal.
var ErrNoTerminal = errors.New("folio needs an interactive terminal; use 'folio sections' for plain output")

type TuiCmd struct {
	flags *Flags

	contentPath string
	assetsDir   string
	noMotion    bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "content",
			Usage:       "path to a guide document (overrides content.path)",
			Sources:     cli.EnvVars("FOLIO_CONTENT"),
			Destination: &cmd.contentPath,
		},
		&cli.StringFlag{
			Name:        "assets",
			Usage:       "directory images are resolved against (overrides content.assets_dir)",
			Sources:     cli.EnvVars("FOLIO_ASSETS"),
			Destination: &cmd.assetsDir,
		},
		&cli.BoolFlag{
			Name:        "no-motion",
			Usage:       "disable scroll-linked section motion",
			Sources:     cli.EnvVars("FOLIO_NO_MOTION"),
			Destination: &cmd.noMotion,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

// ApplyOverrides folds the --content, --assets and --no-motion flags into the
// loaded config. Flags.SetConfig calls it so every command sees them.
func (cmd *TuiCmd) ApplyOverrides() {
	cfg := cmd.flags.Config
	if cmd.contentPath != "" {
		cfg.Content.Path = cmd.contentPath
	}
	if cmd.assetsDir != "" {
		cfg.Content.AssetsDir = cmd.assetsDir
	}
	if cmd.noMotion {
		cfg.TUI.Motion.Disabled = true
	}
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	cfg := cmd.flags.Config

	doc, err := content.Load(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	ctx = logging.WithLoadID(ctx, uuid.NewString())
	log.Info().Ctx(ctx).
		Str("content", cfg.Content.Path).
		Str("assets", cfg.Content.AssetsDir).
		Msg("starting tui")

	m := tui.New(tui.Options{
		Config:   cfg,
		Document: doc,
		Assets:   content.NewAssets(cfg.Content.AssetsDir),
		Context:  ctx,
	})

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
