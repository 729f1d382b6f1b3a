package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/printer"
	"github.com/colonyops/folio/pkg/iojson"
)

type AssetsCmd struct {
	flags *Flags
	json  bool
}

// NewAssetsCmd creates a new assets command.
func NewAssetsCmd(flags *Flags) *AssetsCmd {
	return &AssetsCmd{flags: flags}
}

// Register adds the assets command to the application.
func (cmd *AssetsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "assets",
		Usage:     "Check the images referenced by the guide",
		UsageText: "folio assets [options]",
		Description: `Resolves every image in the guide against the assets directory and lists
image files nobody references. Missing images are not an error: the TUI shows
their alt text instead.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.json,
			},
		},
		Action: cmd.run,
	})
	return app
}

type assetsReport struct {
	Root         string          `json:"root"`
	Referenced   []content.Asset `json:"referenced"`
	Unreferenced []string        `json:"unreferenced"`
}

func buildAssetsReport(doc *content.Document, assets content.Assets) (assetsReport, error) {
	unused, err := assets.Unreferenced(doc)
	if err != nil {
		return assetsReport{}, fmt.Errorf("scan assets: %w", err)
	}
	if unused == nil {
		unused = []string{}
	}
	return assetsReport{
		Root:         assets.Root(),
		Referenced:   assets.Referenced(doc),
		Unreferenced: unused,
	}, nil
}

func (cmd *AssetsCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	doc, err := content.Load(cfg.Content.Path)
	if err != nil {
		if cmd.json {
			return jsonFailure(c.Root().Writer, "load content", err)
		}
		return fmt.Errorf("load content: %w", err)
	}

	report, err := buildAssetsReport(doc, content.NewAssets(cfg.Content.AssetsDir))
	if err != nil {
		if cmd.json {
			return jsonFailure(c.Root().Writer, "scan assets", err)
		}
		return err
	}

	if cmd.json {
		return iojson.Write(c.Root().Writer, report)
	}

	p := printer.Ctx(ctx)
	p.Section("Referenced images")
	if len(report.Referenced) == 0 {
		p.Infof("none")
	}
	for _, a := range report.Referenced {
		if a.Available {
			p.CheckItem(a.Image.Path, a.Path)
		} else {
			p.WarnItem(a.Image.Path, "missing, shows \""+a.Label()+"\"")
		}
	}

	p.Printf("")
	p.Section("Unreferenced files")
	if len(report.Unreferenced) == 0 {
		p.Infof("none")
	}
	for _, f := range report.Unreferenced {
		p.Infof("%s", f)
	}
	return nil
}
