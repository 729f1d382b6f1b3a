package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/colonyops/folio/internal/commands/init"
)

type InitCmd struct {
	flags   *Flags
	yes     bool
	force   bool
	theme   string
	author  string
	url     string
	content string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Create a folio configuration with an interactive wizard",
		UsageText: "folio init [options]",
		Description: `Writes a config file with sensible defaults and checks the result.

The wizard asks for:
  - the color theme
  - a default comment author
  - the guide document and the presentation URL

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration (a .bak copy is kept).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme",
				Destination: &cmd.theme,
			},
			&cli.StringFlag{
				Name:        "author",
				Usage:       "default comment author",
				Destination: &cmd.author,
			},
			&cli.StringFlag{
				Name:        "presentation-url",
				Usage:       "presentation URL opened from presentation mode",
				Destination: &cmd.url,
			},
			&cli.StringFlag{
				Name:        "content-file",
				Usage:       "guide document (YAML) to reference",
				Destination: &cmd.content,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		DataDir:    cmd.flags.DataDir,
		Yes:        cmd.yes,
		Force:      cmd.force,
		Preset: initcmd.ConfigOptions{
			Theme:           cmd.theme,
			DefaultAuthor:   cmd.author,
			PresentationURL: cmd.url,
			ContentPath:     cmd.content,
		},
	})
	return wizard.Run(ctx)
}
