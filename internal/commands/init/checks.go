package initcmd

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/colonyops/folio/internal/core/config"
	"github.com/colonyops/folio/internal/core/content"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// CheckItem is one line of a check report.
type CheckItem struct {
	Label  string
	Status Status
	Detail string
}

// Result groups the items produced by a check.
type Result struct {
	Name  string
	Items []CheckItem
}

// Failed reports whether any item failed.
func (r Result) Failed() bool {
	for _, item := range r.Items {
		if item.Status == StatusFail {
			return true
		}
	}
	return false
}

// InitCheck validates the files written by the wizard.
type InitCheck struct {
	configPath string
	dataDir    string
	lookPath   func(string) (string, error)
}

// NewInitCheck creates a post-init check for the config at configPath.
func NewInitCheck(configPath, dataDir string) *InitCheck {
	return &InitCheck{configPath: configPath, dataDir: dataDir, lookPath: exec.LookPath}
}

func (c *InitCheck) Name() string {
	return "Init Validation"
}

func (c *InitCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	result.Items = append(result.Items, c.checkConfigFile())

	cfg, err := config.Load(c.configPath, c.dataDir)
	if err != nil {
		result.Items = append(result.Items, CheckItem{Label: "Config", Status: StatusFail, Detail: err.Error()})
		return result
	}
	result.Items = append(result.Items, CheckItem{Label: "Config", Status: StatusPass, Detail: "valid"})

	result.Items = append(result.Items,
		c.checkContent(cfg),
		c.checkAssets(cfg),
		c.checkOpener(cfg),
	)
	return result
}

func (c *InitCheck) checkConfigFile() CheckItem {
	if !ConfigExists(c.configPath) {
		return CheckItem{Label: "Config file", Status: StatusFail, Detail: c.configPath + " not found"}
	}
	return CheckItem{Label: "Config file", Status: StatusPass, Detail: c.configPath}
}

func (c *InitCheck) checkContent(cfg *config.Config) CheckItem {
	doc, err := content.Load(cfg.Content.Path)
	if err != nil {
		return CheckItem{Label: "Content", Status: StatusFail, Detail: err.Error()}
	}

	source := cfg.Content.Path
	if source == "" {
		source = "built-in guide"
	}
	return CheckItem{Label: "Content", Status: StatusPass, Detail: source + ", " + pluralize(len(doc.Sections), "section")}
}

func (c *InitCheck) checkAssets(cfg *config.Config) CheckItem {
	info, err := os.Stat(cfg.Content.AssetsDir)
	switch {
	case err != nil:
		return CheckItem{Label: "Assets directory", Status: StatusWarn, Detail: cfg.Content.AssetsDir + " not found, images show placeholders"}
	case !info.IsDir():
		return CheckItem{Label: "Assets directory", Status: StatusFail, Detail: cfg.Content.AssetsDir + " is not a directory"}
	}
	return CheckItem{Label: "Assets directory", Status: StatusPass, Detail: cfg.Content.AssetsDir}
}

// checkOpener looks up the program the open_command template starts with.
func (c *InitCheck) checkOpener(cfg *config.Config) CheckItem {
	fields := strings.Fields(cfg.Presentation.OpenCommand)
	if len(fields) == 0 {
		return CheckItem{Label: "Browser opener", Status: StatusWarn, Detail: "open_command is empty"}
	}
	if _, err := c.lookPath(fields[0]); err != nil {
		return CheckItem{Label: "Browser opener", Status: StatusWarn, Detail: fields[0] + " not found in PATH"}
	}
	return CheckItem{Label: "Browser opener", Status: StatusPass, Detail: fields[0]}
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
