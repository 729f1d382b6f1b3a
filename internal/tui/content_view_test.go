package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/pkg/tuitest"
)

func TestContentView_PanelsStartCollapsed(t *testing.T) {
	v := newTestContentView(t, 6)

	require.Equal(t, 2, v.PanelCount())
	assert.False(t, v.PanelExpanded(0))
	assert.False(t, v.PanelExpanded(1))
	assert.Equal(t, -1, v.FocusedPanel())

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "Panel A")
	assert.NotContains(t, out, "alpha body")
}

func TestContentView_TogglePanel(t *testing.T) {
	v := newTestContentView(t, 6)

	v.Update(tuitest.KeyTab())
	require.Equal(t, 0, v.FocusedPanel())

	v.Update(tuitest.KeyEnter())
	assert.True(t, v.PanelExpanded(0))
	assert.False(t, v.PanelExpanded(1), "panels are independent")
	assert.Contains(t, tuitest.StripANSI(v.View()), "alpha body")

	v.Update(tuitest.KeyPress(' '))
	assert.False(t, v.PanelExpanded(0))
	assert.NotContains(t, tuitest.StripANSI(v.View()), "alpha body")
}

func TestContentView_ToggleParity(t *testing.T) {
	v := newTestContentView(t, 6)
	v.FocusPanel(1)

	for n := 1; n <= 5; n++ {
		require.True(t, v.ToggleFocused())
		assert.Equal(t, n%2 == 1, v.PanelExpanded(1), "after %d toggles", n)
	}
	assert.False(t, v.PanelExpanded(0))
}

func TestContentView_ToggleWithoutFocus(t *testing.T) {
	v := newTestContentView(t, 6)
	assert.False(t, v.ToggleFocused())
}

func TestContentView_FocusWraps(t *testing.T) {
	v := newTestContentView(t, 6)

	v.Update(tuitest.KeyShiftTab())
	assert.Equal(t, 1, v.FocusedPanel())

	v.Update(tuitest.KeyTab())
	assert.Equal(t, 0, v.FocusedPanel())

	v.Update(tuitest.KeyShiftTab())
	assert.Equal(t, 1, v.FocusedPanel())
}

func TestContentView_FocusScrollsPanelIntoView(t *testing.T) {
	v := newTestContentView(t, 6)

	v.FocusPanel(1)
	line := v.layout.panelLines[1]
	assert.LessOrEqual(t, v.YOffset(), line)
	assert.Less(t, line, v.YOffset()+10)
	assert.Contains(t, tuitest.StripANSI(v.View()), "Panel B")
}

func TestContentView_MotionFollowsScroll(t *testing.T) {
	v := newTestContentView(t, 6)

	assert.Equal(t, 0, v.SectionShift("one"), "no displacement at the top")

	v.ScrollTo(10)
	require.Equal(t, 10, v.YOffset())
	assert.Equal(t, 5, v.SectionShift("one"))
	assert.Equal(t, 0, v.SectionShift("two"), "sections without motion stay put")

	v.ScrollTo(40)
	assert.Equal(t, 6, v.SectionShift("one"), "shift is bounded")

	v.ScrollTo(0)
	assert.Equal(t, 0, v.SectionShift("one"))
}

func TestContentView_MotionKeepsLineCount(t *testing.T) {
	v := newTestContentView(t, 6)
	before := len(v.layout.lines)

	v.ScrollTo(12)
	require.NotZero(t, v.SectionShift("one"))
	assert.Len(t, v.layout.lines, before)
	assert.Equal(t, 12, v.YOffset())
}

func TestContentView_MotionDisabled(t *testing.T) {
	v := newTestContentView(t, 0)

	v.ScrollTo(20)
	assert.Equal(t, 0, v.SectionShift("one"))
}

func TestContentView_ResizeRepublishes(t *testing.T) {
	v := newTestContentView(t, 6)
	v.ScrollTo(10)

	v.SetSize(60, 12)
	pos := v.Signal().Last()
	assert.Equal(t, 60, pos.Width)
	assert.Equal(t, 12, pos.Height)
	assert.Equal(t, 10, pos.Offset)
}

func TestContentView_TeardownReleasesRegions(t *testing.T) {
	v := newTestContentView(t, 6)
	require.Equal(t, 1, v.Signal().Subscribers())

	v.Teardown()
	assert.Equal(t, 0, v.Signal().Subscribers())

	v.Teardown()
	assert.Equal(t, 0, v.Signal().Subscribers())
}

func TestContentView_Scrolling(t *testing.T) {
	v := newTestContentView(t, 6)

	v.Update(tuitest.KeyDown())
	v.Update(tuitest.KeyDown())
	assert.Equal(t, 2, v.YOffset())

	v.Update(tuitest.KeyUp())
	assert.Equal(t, 1, v.YOffset())

	v.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	assert.Equal(t, 1+wheelLines, v.YOffset())

	v.Update(tuitest.KeyPress('g'))
	assert.Equal(t, 0, v.YOffset())

	v.ScrollTo(-5)
	assert.Equal(t, 0, v.YOffset())

	v.Update(tuitest.KeyPress('G'))
	assert.Equal(t, len(v.layout.lines)-10, v.YOffset())
}

func TestContentView_Jumps(t *testing.T) {
	v := newTestContentView(t, 6)

	require.True(t, v.JumpTo("two"))
	assert.Equal(t, v.layout.sectionStart["two"], v.YOffset())
	assert.Equal(t, "two", v.ActiveSection())

	assert.False(t, v.JumpTo("missing"))
	assert.Equal(t, v.layout.sectionStart["two"], v.YOffset())

	require.True(t, v.JumpToNav(0))
	assert.Equal(t, 0, v.YOffset())
	assert.Equal(t, content.HomeSection, v.ActiveSection())

	assert.False(t, v.JumpToNav(9))

	v.Update(tuitest.KeyPress('2'))
	assert.Equal(t, "one", v.ActiveSection())
}

func TestContentView_LearnMoreJumpsToTarget(t *testing.T) {
	v := newTestContentView(t, 6)

	v.Update(tuitest.KeyPress('m'))
	assert.Equal(t, "two", v.ActiveSection())
}

func TestContentView_MissingImagePlaceholder(t *testing.T) {
	v := newTestContentView(t, 6)
	v.JumpTo("two")

	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "Missing shot")
	assert.Contains(t, out, "(image unavailable)")
}
