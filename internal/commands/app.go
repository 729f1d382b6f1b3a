package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewApp builds the root command with the global flags, the TUI flags, and
// every subcommand registered. The caller adds the Before and After hooks.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "folio",
		Usage:     "Browse a guide in the terminal",
		UsageText: "folio [global options] command [command options]",
		Description: `folio renders a guide document as a scrollable terminal page with
collapsible panels, scroll-linked section motion, and a session comment board.

Run 'folio' with no arguments to open the guide.
Run 'folio init' to create a configuration file.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FOLIO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/folio.log)",
				Sources:     cli.EnvVars("FOLIO_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FOLIO_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("FOLIO_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}

	tuiCmd := NewTuiCmd(flags)

	app = NewInitCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)
	app = NewSectionsCmd(flags).Register(app)
	app = NewAssetsCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Open the guide when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'folio --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	flags.tui = tuiCmd
	return app
}
