package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/printer"
	"github.com/colonyops/folio/pkg/iojson"
)

type SectionsCmd struct {
	flags *Flags
	json  bool
}

// NewSectionsCmd creates a new sections command.
func NewSectionsCmd(flags *Flags) *SectionsCmd {
	return &SectionsCmd{flags: flags}
}

// Register adds the sections command to the application.
func (cmd *SectionsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sections",
		Usage:     "List the sections of the guide document",
		UsageText: "folio sections [options]",
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

// sectionSummary is one row of the sections listing.
type sectionSummary struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Motion *float64 `json:"motion,omitempty"`
	Panels int      `json:"panels"`
	Images int      `json:"images"`
	Nav    string   `json:"nav,omitempty"`
}

func summarizeSections(doc *content.Document) []sectionSummary {
	navLabels := make(map[string]string, len(doc.Nav))
	for _, item := range doc.Nav {
		navLabels[item.Section] = item.Label
	}

	out := make([]sectionSummary, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		row := sectionSummary{ID: s.ID, Title: s.Title, Motion: s.Motion, Nav: navLabels[s.ID]}
		for _, b := range s.Blocks {
			switch b.Kind() {
			case content.BlockPanel:
				row.Panels++
			case content.BlockImage:
				row.Images++
			}
		}
		out = append(out, row)
	}
	return out
}

func (cmd *SectionsCmd) run(ctx context.Context, c *cli.Command) error {
	doc, err := content.Load(cmd.flags.Config.Content.Path)
	if err != nil {
		if cmd.json {
			return jsonFailure(c.Root().Writer, "load content", err)
		}
		return fmt.Errorf("load content: %w", err)
	}

	rows := summarizeSections(doc)
	if cmd.json {
		return iojson.Write(c.Root().Writer, rows)
	}

	p := printer.Ctx(ctx)
	p.Section(doc.Title)
	for _, row := range rows {
		var details []string
		if row.Nav != "" {
			details = append(details, "nav "+row.Nav)
		}
		if row.Motion != nil {
			details = append(details, fmt.Sprintf("motion %.2g", *row.Motion))
		}
		details = append(details, fmt.Sprintf("%d panels", row.Panels), fmt.Sprintf("%d images", row.Images))
		p.Printf("  %-12s %s (%s)", row.ID, row.Title, strings.Join(details, ", "))
	}
	return nil
}
