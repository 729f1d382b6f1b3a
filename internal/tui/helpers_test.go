package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/folio/internal/core/comment"
	"github.com/colonyops/folio/internal/core/config"
	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/pkg/executil"
)

// testGuide builds a small document. Headings keep the layout free of
// markdown rendering so line positions are predictable.
func testGuide(t *testing.T) *content.Document {
	t.Helper()

	var b strings.Builder
	b.WriteString(`
title: Guide
nav:
  - label: 首页
    section: home
  - label: One
    section: one
  - label: Two
    section: two
hero:
  title: Hero
  cta: 了解更多
  cta_target: two
presentation:
  title: Deck
  url: https://example.com/deck
sections:
  - id: one
    title: Section One
    motion: 0.5
    blocks:
      - panel:
          title: Panel A
          body: alpha body
`)
	for i := range 15 {
		b.WriteString("      - heading: filler " + string(rune('a'+i)) + "\n")
	}
	b.WriteString(`
  - id: two
    title: Section Two
    blocks:
      - panel:
          title: Panel B
          body: beta body
      - image:
          path: missing.png
          alt: Missing shot
`)
	for i := range 15 {
		b.WriteString("      - heading: more " + string(rune('a'+i)) + "\n")
	}

	doc, err := content.Parse([]byte(b.String()))
	require.NoError(t, err)
	return doc
}

func newTestContentView(t *testing.T, maxShift int) *ContentView {
	t.Helper()
	v := NewContentView(ContentViewOptions{
		Document:   testGuide(t),
		Assets:     content.NewAssets(t.TempDir()),
		Markdown:   newMarkdownRenderer(),
		MaxShift:   maxShift,
		ScrollStep: 1,
	})
	v.SetSize(80, 10)
	t.Cleanup(v.Teardown)
	return v
}

type testModel struct {
	t     *testing.T
	model Model
	exec  *executil.RecordingExecutor
}

func newTestModel(t *testing.T, width, height int) *testModel {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Presentation.OpenCommand = "open {{ .URL | shq }}"
	exec := &executil.RecordingExecutor{}

	m := New(Options{
		Config:   &cfg,
		Document: testGuide(t),
		Assets:   content.NewAssets(t.TempDir()),
		Board:    comment.NewBoard(),
		Executor: exec,
	})
	tm := &testModel{t: t, model: m, exec: exec}
	tm.send(tea.WindowSizeMsg{Width: width, Height: height})
	return tm
}

// send delivers msg and returns the command the model produced.
func (tm *testModel) send(msg tea.Msg) tea.Cmd {
	tm.t.Helper()
	updated, cmd := tm.model.Update(msg)
	m, ok := updated.(Model)
	require.True(tm.t, ok)
	tm.model = m
	return cmd
}

// sendAll delivers every message and drops the commands.
func (tm *testModel) sendAll(msgs ...tea.Msg) {
	tm.t.Helper()
	for _, msg := range msgs {
		tm.send(msg)
	}
}

// do delivers msg and runs the resulting command so toasts and async results
// come back the way they would at runtime.
func (tm *testModel) do(msg tea.Msg) {
	tm.t.Helper()
	tm.run(tm.send(msg))
}

// run executes cmd and feeds back the messages the model cares about.
func (tm *testModel) run(cmd tea.Cmd) {
	tm.t.Helper()
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case notifyMsg, presentationOpenedMsg:
		tm.run(tm.send(msg))
	case tea.BatchMsg:
		for _, c := range msg {
			tm.run(c)
		}
	}
}
