package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/folio/internal/core/config"
	"github.com/colonyops/folio/internal/printer"
	"github.com/colonyops/folio/pkg/iojson"
	"github.com/colonyops/folio/pkg/tuitest"
)

const testGuideYAML = `
title: Guide
nav:
  - label: One
    section: one
sections:
  - id: one
    title: Section One
    motion: 0.5
    blocks:
      - panel:
          title: Panel A
          body: alpha
      - image:
          path: hero.png
          alt: Hero shot
  - id: two
    title: Section Two
    blocks:
      - image:
          path: missing.png
`

type testEnv struct {
	flags  *Flags
	assets string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()

	guide := filepath.Join(dir, "guide.yaml")
	require.NoError(t, os.WriteFile(guide, []byte(testGuideYAML), 0o644))

	assets := filepath.Join(dir, "public")
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "hero.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "img", "old.jpg"), []byte("jpg"), 0o644))

	cfg, err := config.Load("", dir)
	require.NoError(t, err)
	cfg.Content.Path = guide
	cfg.Content.AssetsDir = assets

	return testEnv{
		flags:  &Flags{ConfigPath: filepath.Join(dir, "config.yaml"), DataDir: dir, Config: cfg},
		assets: assets,
	}
}

// runApp runs args against a root command built by register and returns the
// combined writer and printer output.
func runApp(t *testing.T, register func(*cli.Command) *cli.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := register(&cli.Command{Name: "folio", Writer: &buf})

	ctx := printer.NewContext(context.Background(), printer.New(&buf))
	err := app.Run(ctx, append([]string{"folio"}, args...))
	return tuitest.StripANSI(buf.String()), err
}

func TestSectionsCmd_Text(t *testing.T) {
	env := newTestEnv(t)

	out, err := runApp(t, NewSectionsCmd(env.flags).Register, "sections")
	require.NoError(t, err)
	assert.Contains(t, out, "Guide")
	assert.Contains(t, out, "one          Section One (nav One, motion 0.5, 1 panels, 1 images)")
	assert.Contains(t, out, "two          Section Two (0 panels, 1 images)")
}

func TestSectionsCmd_JSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := runApp(t, NewSectionsCmd(env.flags).Register, "sections", "--json")
	require.NoError(t, err)

	var rows []sectionSummary
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "one", rows[0].ID)
	require.NotNil(t, rows[0].Motion)
	assert.InDelta(t, 0.5, *rows[0].Motion, 0.0001)
	assert.Equal(t, 1, rows[0].Panels)
	assert.Nil(t, rows[1].Motion)
}

func TestAssetsCmd_Text(t *testing.T) {
	env := newTestEnv(t)

	out, err := runApp(t, NewAssetsCmd(env.flags).Register, "assets")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ hero.png")
	assert.Contains(t, out, `! missing.png (missing, shows "missing.png")`)
	assert.Contains(t, out, "• img/old.jpg")
}

func TestAssetsCmd_JSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := runApp(t, NewAssetsCmd(env.flags).Register, "assets", "--json")
	require.NoError(t, err)

	var report assetsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, env.assets, report.Root)
	require.Len(t, report.Referenced, 2)
	assert.True(t, report.Referenced[0].Available)
	assert.False(t, report.Referenced[1].Available)
	assert.Equal(t, []string{"img/old.jpg"}, report.Unreferenced)
}

func TestAssetsCmd_MissingDirectory(t *testing.T) {
	env := newTestEnv(t)
	env.flags.Config.Content.AssetsDir = filepath.Join(env.flags.DataDir, "nope")

	out, err := runApp(t, NewAssetsCmd(env.flags).Register, "assets", "--json")
	require.NoError(t, err)

	var report assetsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Empty(t, report.Unreferenced)
	for _, a := range report.Referenced {
		assert.False(t, a.Available)
	}
}

func TestConfigValidateCmd_Valid(t *testing.T) {
	env := newTestEnv(t)

	out, err := runApp(t, NewConfigValidateCmd(env.flags).Register, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Configuration is valid")
}

func TestConfigValidateCmd_ValidJSON(t *testing.T) {
	env := newTestEnv(t)

	out, err := runApp(t, NewConfigValidateCmd(env.flags).Register, "config", "validate", "--format", "json")
	require.NoError(t, err)

	var report validationReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestConfigValidateCmd_ReportCollectsFieldErrors(t *testing.T) {
	env := newTestEnv(t)
	env.flags.Config.TUI.Theme = "unknown"

	report := NewConfigValidateCmd(env.flags).report()
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "tui.theme", report.Errors[0].Field)
	assert.Contains(t, report.Errors[0].Message, "unknown theme")
}

func TestConfigValidateCmd_ReportWarnings(t *testing.T) {
	env := newTestEnv(t)
	env.flags.Config.TUI.Motion.Disabled = true

	report := NewConfigValidateCmd(env.flags).report()
	assert.True(t, report.Valid)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "motion", report.Warnings[0].Item)
}

func TestTuiCmd_ApplyOverrides(t *testing.T) {
	env := newTestEnv(t)
	cmd := NewTuiCmd(env.flags)
	cmd.contentPath = "/tmp/other.yaml"
	cmd.assetsDir = "/tmp/static"
	cmd.noMotion = true

	cmd.ApplyOverrides()

	cfg := env.flags.Config
	assert.Equal(t, "/tmp/other.yaml", cfg.Content.Path)
	assert.Equal(t, "/tmp/static", cfg.Content.AssetsDir)
	assert.Equal(t, 0, cfg.MotionShift())
}

func TestTuiCmd_ApplyOverridesKeepsConfigWhenUnset(t *testing.T) {
	env := newTestEnv(t)
	before := *env.flags.Config

	NewTuiCmd(env.flags).ApplyOverrides()
	assert.Equal(t, before, *env.flags.Config)
}

func TestNewApp_RegistersCommands(t *testing.T) {
	app := NewApp(&Flags{}, "test")

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"init", "config", "sections", "assets"}, names)

	flagNames := map[string]bool{}
	for _, f := range app.Flags {
		for _, n := range f.Names() {
			flagNames[n] = true
		}
	}
	for _, want := range []string{"log-level", "config", "data-dir", "content", "assets", "no-motion"} {
		assert.True(t, flagNames[want], "missing flag %s", want)
	}
}

func TestFlags_SetConfigAppliesOverrides(t *testing.T) {
	env := newTestEnv(t)
	flags := &Flags{}
	app := NewApp(flags, "test")
	app.Action = func(context.Context, *cli.Command) error { return nil }

	require.NoError(t, app.Run(context.Background(), []string{"folio", "--no-motion"}))

	flags.SetConfig(env.flags.Config)
	assert.Equal(t, 0, flags.Config.MotionShift())
}

func TestJSONFailure(t *testing.T) {
	var buf bytes.Buffer

	err := jsonFailure(&buf, "load content", errors.New("no such file"))

	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())

	var doc iojson.Error
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "load content", doc.Message)
	assert.Equal(t, "no such file", doc.Data["error"])
}
