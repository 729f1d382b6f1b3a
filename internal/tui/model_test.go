package tui

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/folio/internal/core/comment"
	"github.com/colonyops/folio/internal/core/viewmode"
	"github.com/colonyops/folio/pkg/tuitest"
)

func render(tm *testModel) string {
	return tuitest.StripANSI(tm.model.render())
}

func TestModel_StartsInContentMode(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	assert.Equal(t, viewmode.Content, tm.model.Mode())
	require.NotNil(t, tm.model.ContentView())
	require.NotNil(t, tm.model.CommentPane())

	out := render(tm)
	assert.Contains(t, out, "Guide")
	assert.Contains(t, out, "1 首页")
	assert.Contains(t, out, "查看演示")
	assert.Contains(t, out, "留言板 (0)")
}

func TestModel_ToggleRebuildsContent(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	first := tm.model.ContentView()
	tm.sendAll(tuitest.KeyTab(), tuitest.KeyEnter())
	first.ScrollTo(10)
	require.True(t, first.PanelExpanded(0))
	require.Equal(t, 1, first.Signal().Subscribers())

	tm.send(tuitest.KeyPress('p'))
	assert.Equal(t, viewmode.Presentation, tm.model.Mode())
	assert.Nil(t, tm.model.ContentView())
	assert.Equal(t, 0, first.Signal().Subscribers(), "motion subscriptions are released on leave")

	out := render(tm)
	assert.Contains(t, out, "返回内容")
	assert.Contains(t, out, "Deck")
	assert.Contains(t, out, "https://example.com/deck")

	tm.send(tuitest.KeyEsc())
	assert.Equal(t, viewmode.Content, tm.model.Mode())

	second := tm.model.ContentView()
	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.False(t, second.PanelExpanded(0), "panels come back collapsed")
	assert.Equal(t, 0, second.YOffset(), "scroll position resets")
	assert.Equal(t, 0, second.SectionShift("one"))
	assert.Equal(t, 1, second.Signal().Subscribers())
}

func TestModel_CommentsSurviveToggle(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	tm.sendAll(tuitest.KeyPress('c'), tuitest.KeyPress('n'))
	tm.sendAll(tuitest.Type("Ann")...)
	tm.send(tuitest.KeyTab())
	tm.sendAll(tuitest.Type("hello")...)
	tm.do(tuitest.KeyCtrl('s'))
	require.Equal(t, 1, tm.model.Board().Len())
	assert.Equal(t, 1, tm.model.toasts.len())

	// Start a second draft, then leave the page.
	tm.sendAll(tuitest.Type("Bob")...)
	require.Equal(t, "Bob", tm.model.Board().Draft().Author)
	tm.send(tuitest.KeyEsc())
	tm.send(tuitest.KeyEsc())
	tm.send(tuitest.KeyPress('p'))
	tm.send(tuitest.KeyPress('p'))

	require.Equal(t, viewmode.Content, tm.model.Mode())
	assert.Equal(t, 1, tm.model.Board().Len(), "comments are kept across mode switches")
	assert.True(t, tm.model.Board().Draft().Empty(), "the draft is discarded on unmount")
	assert.Contains(t, render(tm), "留言板 (1)")
}

func TestModel_EditTargetDiscardedOnToggle(t *testing.T) {
	tm := newTestModel(t, 120, 30)
	board := tm.model.Board()
	board.Submit(comment.Draft{Author: "Ann", Content: "hi"})

	tm.sendAll(tuitest.KeyPress('c'), tuitest.KeyPress('e'))
	_, editing := board.Editing()
	require.True(t, editing)

	// Leave the form without cancelling the edit, then switch modes.
	tm.model.CommentPane().Blur()
	tm.sendAll(tuitest.KeyEsc(), tuitest.KeyPress('p'))

	_, editing = board.Editing()
	assert.False(t, editing)
	assert.True(t, board.Draft().Empty())
	assert.Equal(t, 1, board.Len())
}

func TestModel_FormSwallowsGlobalKeys(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	tm.sendAll(tuitest.KeyPress('c'), tuitest.KeyPress('n'))
	tm.sendAll(tuitest.Type("pq?")...)

	assert.Equal(t, viewmode.Content, tm.model.Mode())
	assert.Equal(t, stateNormal, tm.model.State())
	assert.Equal(t, "pq?", tm.model.Board().Draft().Author)
}

func TestModel_NarrowTerminalSwapsPane(t *testing.T) {
	tm := newTestModel(t, 70, 30)

	out := render(tm)
	assert.NotContains(t, out, "留言板")
	assert.Contains(t, out, "Hero")

	tm.send(tuitest.KeyPress('c'))
	out = render(tm)
	assert.Contains(t, out, "留言板 (0)")
	assert.NotContains(t, out, "Hero")

	tm.send(tuitest.KeyEsc())
	assert.NotContains(t, render(tm), "留言板")
}

func TestModel_HidePane(t *testing.T) {
	tm := newTestModel(t, 120, 30)
	require.Contains(t, render(tm), "留言板")

	tm.send(tuitest.KeyPress('C'))
	assert.NotContains(t, render(tm), "留言板")

	tm.send(tuitest.KeyPress('C'))
	assert.Contains(t, render(tm), "留言板")
}

func TestModel_QuitWithoutComments(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	cmd := tm.send(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_QuitConfirmsWhenCommentsExist(t *testing.T) {
	tm := newTestModel(t, 120, 30)
	tm.model.Board().Submit(comment.Draft{Author: "Ann", Content: "hi"})

	cmd := tm.send(tuitest.KeyPress('q'))
	assert.Nil(t, cmd)
	assert.Equal(t, stateConfirmingQuit, tm.model.State())
	assert.Contains(t, render(tm), "退出后将全部丢失")

	tm.send(tuitest.KeyPress('n'))
	assert.Equal(t, stateNormal, tm.model.State())

	tm.send(tuitest.KeyPress('q'))
	cmd = tm.send(tuitest.KeyPress('y'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpOverlay(t *testing.T) {
	tm := newTestModel(t, 120, 60)

	tm.send(tuitest.KeyPress('?'))
	assert.Equal(t, stateShowingHelp, tm.model.State())
	assert.Contains(t, render(tm), "Keyboard shortcuts")

	tm.send(tuitest.KeyDown())
	assert.Equal(t, stateShowingHelp, tm.model.State(), "other keys are ignored")

	tm.send(tuitest.KeyEsc())
	assert.Equal(t, stateNormal, tm.model.State())
}

func TestModel_NavTracksScroll(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	tm.send(tuitest.KeyPress('3'))
	assert.Equal(t, "two", tm.model.ContentView().ActiveSection())

	tm.send(tuitest.KeyPress('g'))
	assert.Equal(t, "home", tm.model.ContentView().ActiveSection())
}

func TestModel_MouseWheelScrollsPage(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	tm.send(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	assert.Equal(t, wheelLines, tm.model.ContentView().YOffset())
}

func TestModel_OpenPresentation(t *testing.T) {
	tm := newTestModel(t, 120, 30)
	tm.send(tuitest.KeyPress('p'))

	tm.do(tuitest.KeyPress('o'))

	require.Len(t, tm.exec.Commands(), 1)
	assert.Equal(t, "open 'https://example.com/deck'", tm.exec.Commands()[0].Cmd)
	require.Equal(t, 1, tm.model.toasts.len())
	assert.Equal(t, "已在浏览器中打开演示", tm.model.toasts.toasts[0].notification.Message)
}

func TestModel_OpenPresentationFailure(t *testing.T) {
	tm := newTestModel(t, 120, 30)
	tm.exec.Err = errors.New("no opener")
	tm.send(tuitest.KeyPress('p'))

	tm.do(tuitest.KeyPress('o'))

	require.Equal(t, 1, tm.model.toasts.len())
	assert.Contains(t, tm.model.toasts.toasts[0].notification.Message, "no opener")
	assert.Contains(t, render(tm), "no opener")
}

func TestModel_ViewIsAltScreen(t *testing.T) {
	tm := newTestModel(t, 120, 30)

	v := tm.model.View()
	assert.True(t, v.AltScreen)
	assert.Equal(t, tea.MouseModeCellMotion, v.MouseMode)
}
