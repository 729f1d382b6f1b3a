package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/folio/internal/core/notify"
	"github.com/colonyops/folio/pkg/executil"
	"github.com/colonyops/folio/pkg/tuitest"
)

func TestPresentationView_Open(t *testing.T) {
	exec := &executil.RecordingExecutor{}
	v := NewPresentationView(PresentationViewOptions{
		Title:       "Deck",
		URL:         "https://example.com/a b",
		OpenCommand: "xdg-open {{ .URL | shq }} # {{ .Title }}",
		Executor:    exec,
	})

	cmd := v.Update(context.Background(), tuitest.KeyPress('o'))
	require.NotNil(t, cmd)

	msg, ok := cmd().(presentationOpenedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	require.Len(t, exec.Commands(), 1)
	assert.Equal(t, "xdg-open 'https://example.com/a b' # Deck", exec.Commands()[0].Cmd)
}

func TestPresentationView_OpenError(t *testing.T) {
	exec := &executil.RecordingExecutor{Err: errors.New("boom")}
	v := NewPresentationView(PresentationViewOptions{
		URL:         "https://example.com",
		OpenCommand: "open {{ .URL }}",
		Executor:    exec,
	})

	msg, ok := v.Open(context.Background())().(presentationOpenedMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.err, "boom")
}

func TestPresentationView_MissingURL(t *testing.T) {
	exec := &executil.RecordingExecutor{}
	v := NewPresentationView(PresentationViewOptions{OpenCommand: "open {{ .URL }}", Executor: exec})

	n := notification(t, v.Open(context.Background()))
	assert.Equal(t, notify.LevelWarning, n.Level)
	assert.Empty(t, exec.Commands())
}

func TestPresentationView_BadTemplate(t *testing.T) {
	exec := &executil.RecordingExecutor{}
	v := NewPresentationView(PresentationViewOptions{
		URL:         "https://example.com",
		OpenCommand: "open {{ .URL",
		Executor:    exec,
	})

	n := notification(t, v.Open(context.Background()))
	assert.Equal(t, notify.LevelError, n.Level)
	assert.Empty(t, exec.Commands())
}

func TestPresentationView_IgnoresOtherKeys(t *testing.T) {
	v := NewPresentationView(PresentationViewOptions{URL: "https://example.com", Executor: &executil.RecordingExecutor{}})
	assert.Nil(t, v.Update(context.Background(), tuitest.KeyPress('x')))
}

func TestPresentationView_View(t *testing.T) {
	v := NewPresentationView(PresentationViewOptions{Title: "Deck", URL: "https://example.com/deck"})
	v.SetSize(100, 20)

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "Deck")
	assert.Contains(t, out, "https://example.com/deck")
	assert.Contains(t, out, "退出演示")

	empty := NewPresentationView(PresentationViewOptions{})
	assert.Contains(t, tuitest.StripANSI(empty.View()), "未配置演示地址")
}
