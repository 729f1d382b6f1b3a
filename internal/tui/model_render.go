package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/folio/internal/core/styles"
	"github.com/colonyops/folio/internal/core/viewmode"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// render composes the screen: header, body, status bar, then overlays.
func (m Model) render() string {
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	mainView := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderBody(),
		m.renderStatusBar(),
	)

	content := mainView
	switch m.state {
	case stateShowingHelp:
		content = m.helpDialog.Overlay(mainView, w, h)
	case stateConfirmingQuit:
		content = m.confirm.Overlay(mainView, w, h)
	}

	if m.toasts.len() > 0 {
		content = m.toasts.overlay(content, w, h)
	}
	return content
}

// renderHeader draws the title, the navigation bar, and the mode toggle
// button on one line.
func (m Model) renderHeader() string {
	title := styles.HeaderTitleStyle.Render(m.doc.Title)

	active := ""
	if m.page != nil {
		active = m.page.ActiveSection()
	}
	items := make([]string, 0, len(m.doc.Nav))
	for i, item := range m.doc.Nav {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		if m.modes.Mode() == viewmode.Content && item.Section == active {
			items = append(items, styles.NavActiveStyle.Render(label))
		} else {
			items = append(items, styles.NavNormalStyle.Render(label))
		}
	}
	nav := strings.Join(items, " ")

	button := styles.ToggleButtonStyle.Render(toggleLabel(m.modes.Mode()))

	left := ansi.Truncate(title+" "+nav, max(m.width-lipgloss.Width(button)-1, 0), "…")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(button), 1)
	return left + strings.Repeat(" ", gap) + button
}

// toggleLabel names the mode the button switches to.
func toggleLabel(mode viewmode.Mode) string {
	if mode == viewmode.Presentation {
		return "返回内容"
	}
	return "查看演示"
}

func (m Model) renderBody() string {
	if m.modes.Mode() == viewmode.Presentation || m.page == nil {
		return m.presentation.View()
	}

	commentsFocused := m.focus == focusComments
	if m.sidePaneVisible() {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.page.View(), m.comments.View(commentsFocused))
	}
	if commentsFocused {
		return m.comments.View(true)
	}
	return m.page.View()
}

func (m Model) renderStatusBar() string {
	var bindings []key.Binding
	switch {
	case m.modes.Mode() == viewmode.Presentation:
		bindings = m.keys.presentationShortHelp()
	case m.focus == focusComments && m.comments != nil && m.comments.FormActive():
		return styles.StatusBarStyle.Width(m.width).Render(m.comments.form.Help)
	case m.focus == focusComments:
		bindings = m.keys.commentShortHelp()
	default:
		bindings = m.keys.pageShortHelp()
	}

	left := m.help.ShortHelpView(bindings)
	right := ""
	if m.page != nil {
		right = fmt.Sprintf("%3.0f%%", m.page.ScrollPercent()*100)
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
