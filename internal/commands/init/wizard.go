// Package initcmd implements the 'folio init' setup wizard.
package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/folio/internal/core/config"
	"github.com/colonyops/folio/internal/core/styles"
	"github.com/colonyops/folio/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	DataDir    string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
	Preset     ConfigOptions
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
	// prompt collects answers interactively; replaced in tests.
	prompt func(*ConfigOptions) error
	// confirm asks whether to overwrite an existing config.
	confirm func(path string) (bool, error)
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts, prompt: promptUser, confirm: confirmOverwrite}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		overwrite, err := w.confirm(w.opts.ConfigPath)
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := w.opts.Preset
	if answers.Theme == "" {
		answers.Theme = config.DefaultTheme
	}
	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			return err
		}
	}
	answers.ContentPath = expandHome(strings.TrimSpace(answers.ContentPath))
	answers.AssetsDir = expandHome(strings.TrimSpace(answers.AssetsDir))

	if _, ok := styles.GetPalette(answers.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", answers.Theme, strings.Join(styles.ThemeNames(), ", "))
	}

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	if err := WriteConfig(GenerateConfig(answers), w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	p.Printf("")
	result := NewInitCheck(w.opts.ConfigPath, w.opts.DataDir).Run(ctx)

	p.Section(result.Name)
	for _, item := range result.Items {
		switch item.Status {
		case StatusPass:
			p.CheckItem(item.Label, item.Detail)
		case StatusWarn:
			p.WarnItem(item.Label, item.Detail)
		case StatusFail:
			p.FailItem(item.Label, item.Detail)
		}
	}

	w.printNextSteps(p)
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Config file already exists").
		Description(path + "\nOverwrite? (a backup will be created)").
		Value(&overwrite).
		Run()
	return overwrite, err
}

func promptUser(answers *ConfigOptions) error {
	options := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		options = append(options, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(options...).
				Value(&answers.Theme),
			huh.NewInput().
				Title("Default comment author").
				Description("Prefilled into new comments; leave empty to ask every time").
				Value(&answers.DefaultAuthor),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Content file").
				Description("YAML guide document; leave empty for the built-in guide").
				Value(&answers.ContentPath).
				Validate(fileOrEmpty),
			huh.NewInput().
				Title("Presentation URL").
				Description("Opened in the browser from presentation mode").
				Value(&answers.PresentationURL),
			huh.NewConfirm().
				Title("Disable scroll motion?").
				Value(&answers.DisableMotion),
		),
	)
	return form.Run()
}

func fileOrEmpty(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	info, err := os.Stat(expandHome(path))
	if err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func (w *Wizard) printNextSteps(p *printer.Printer) {
	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Run 'folio config validate' after editing %s", w.opts.ConfigPath)
	p.Printf("  2. Run 'folio' to open the guide")
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
