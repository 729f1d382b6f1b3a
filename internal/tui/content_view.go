package tui

import (
	"slices"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/core/motion"
)

// wheelLines is how far one mouse wheel notch scrolls, in scroll steps.
const wheelLines = 3

// ContentViewOptions configures a ContentView.
type ContentViewOptions struct {
	Document   *content.Document
	Assets     content.Assets
	Markdown   *markdownRenderer
	MaxShift   int // motion limit in columns, zero disables motion
	ScrollStep int
}

// ContentView is the scrollable guide. The viewport offset is the scroll
// signal every motion region subscribes to.
type ContentView struct {
	doc        *content.Document
	keys       keyMap
	viewport   viewport.Model
	signal     *motion.Signal
	page       *page
	layout     pageLayout
	focus      int // focused panel index, -1 for none
	maxShift   int
	scrollStep int
	width      int
	height     int
	mounted    bool
}

// NewContentView builds a fresh page: every panel collapsed, scroll at the top,
// and motion regions subscribed to a new signal.
func NewContentView(opts ContentViewOptions) *ContentView {
	v := &ContentView{
		doc:        opts.Document,
		keys:       defaultKeyMap(),
		viewport:   viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		signal:     motion.NewSignal(),
		page:       newPage(opts.Document, opts.Assets, opts.Markdown),
		focus:      -1,
		maxShift:   opts.MaxShift,
		scrollStep: max(opts.ScrollStep, 1),
		width:      80,
		height:     20,
	}
	v.page.mount(v.signal)
	v.mounted = true
	v.relayout()
	return v
}

// Teardown releases motion subscriptions. The view must not be used afterwards.
func (v *ContentView) Teardown() {
	if !v.mounted {
		return
	}
	v.page.unmount()
	v.mounted = false
}

// Signal exposes the scroll signal.
func (v *ContentView) Signal() *motion.Signal { return v.signal }

// SetSize resizes the viewport and republishes the position.
func (v *ContentView) SetSize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
	v.viewport.SetWidth(v.width)
	v.viewport.SetHeight(v.height)
	v.relayout()
	v.publish()
}

// Update handles page navigation keys and mouse wheel scrolling.
func (v *ContentView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			v.ScrollBy(-wheelLines * v.scrollStep)
		case tea.MouseWheelDown:
			v.ScrollBy(wheelLines * v.scrollStep)
		}
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, v.keys.Up):
			v.ScrollBy(-v.scrollStep)
		case key.Matches(msg, v.keys.Down):
			v.ScrollBy(v.scrollStep)
		case key.Matches(msg, v.keys.HalfUp):
			v.ScrollBy(-max(v.height/2, 1))
		case key.Matches(msg, v.keys.HalfDown):
			v.ScrollBy(max(v.height/2, 1))
		case key.Matches(msg, v.keys.Top):
			v.ScrollTo(0)
		case key.Matches(msg, v.keys.Bottom):
			v.ScrollTo(len(v.layout.lines))
		case key.Matches(msg, v.keys.NextPanel):
			v.FocusPanel(v.focus + 1)
		case key.Matches(msg, v.keys.PrevPanel):
			if v.focus < 0 {
				v.FocusPanel(len(v.page.panels) - 1)
			} else {
				v.FocusPanel(v.focus - 1)
			}
		case key.Matches(msg, v.keys.TogglePanel):
			v.ToggleFocused()
		case key.Matches(msg, v.keys.LearnMore):
			v.JumpTo(v.doc.Hero.CTATarget)
		case key.Matches(msg, v.keys.Jump):
			v.JumpToNav(int(msg.String()[0] - '1'))
		}
	}
	return nil
}

// ScrollBy moves the viewport by delta lines.
func (v *ContentView) ScrollBy(delta int) {
	v.ScrollTo(v.viewport.YOffset() + delta)
}

// ScrollTo moves the viewport so line is at the top, clamped to the content.
func (v *ContentView) ScrollTo(line int) {
	v.viewport.SetYOffset(max(line, 0))
	v.publish()
}

// YOffset returns the current scroll position in lines.
func (v *ContentView) YOffset() int { return v.viewport.YOffset() }

// JumpTo scrolls to the section with id. Unknown ids are ignored.
func (v *ContentView) JumpTo(id string) bool {
	line, ok := v.layout.sectionStart[id]
	if !ok {
		return false
	}
	v.ScrollTo(line)
	return true
}

// JumpToNav scrolls to the target of the i-th navigation item.
func (v *ContentView) JumpToNav(i int) bool {
	if i < 0 || i >= len(v.doc.Nav) {
		return false
	}
	return v.JumpTo(v.doc.Nav[i].Section)
}

// ActiveSection returns the id of the section at the top of the viewport.
func (v *ContentView) ActiveSection() string {
	return v.layout.activeSection(v.page, v.viewport.YOffset())
}

// FocusPanel moves keyboard focus to panel i, wrapping around, and scrolls
// its header into view.
func (v *ContentView) FocusPanel(i int) {
	n := len(v.page.panels)
	if n == 0 {
		return
	}
	v.focus = ((i % n) + n) % n
	v.relayout()

	line := v.layout.panelLines[v.focus]
	top := v.viewport.YOffset()
	switch {
	case line < top:
		v.ScrollTo(line)
	case line >= top+v.height:
		v.ScrollTo(line - v.height/3)
	}
}

// FocusedPanel returns the focused panel index, or -1.
func (v *ContentView) FocusedPanel() int { return v.focus }

// ToggleFocused expands or collapses the focused panel.
func (v *ContentView) ToggleFocused() bool {
	if v.focus < 0 || v.focus >= len(v.page.panels) {
		return false
	}
	v.page.panels[v.focus].Toggle()
	v.relayout()
	return true
}

// PanelExpanded reports whether panel i is expanded.
func (v *ContentView) PanelExpanded(i int) bool {
	if i < 0 || i >= len(v.page.panels) {
		return false
	}
	return v.page.panels[i].Expanded()
}

// PanelCount returns the number of panels on the page.
func (v *ContentView) PanelCount() int { return len(v.page.panels) }

// SectionShift returns the current motion shift of the section with id.
func (v *ContentView) SectionShift(id string) int {
	for i, ps := range v.page.sections {
		if ps.section.ID == id {
			return v.layout.shifts[i]
		}
	}
	return 0
}

// ScrollPercent returns how far through the page the viewport is.
func (v *ContentView) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// View renders the visible part of the page.
func (v *ContentView) View() string {
	return v.viewport.View()
}

// publish sends the current position to every region and re-lays out the
// page only if a region's shift actually changed.
func (v *ContentView) publish() {
	v.signal.Publish(motion.Position{
		Offset: v.viewport.YOffset(),
		Width:  v.width,
		Height: v.height,
	})
	limit := shiftLimit(v.width, v.maxShift)
	if !slices.Equal(v.page.shifts(limit), v.layout.shifts) {
		v.relayout()
	}
}

func (v *ContentView) relayout() {
	offset := v.viewport.YOffset()
	v.layout = v.page.render(v.width, v.maxShift, v.focus)
	v.viewport.SetContentLines(v.layout.lines)
	v.viewport.SetYOffset(offset)
}
