package components

import (
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/folio/internal/core/disclosure"
	"github.com/colonyops/folio/internal/core/styles"
)

// PanelView renders a disclosure panel: the header always, the body only
// while the panel is expanded.
type PanelView struct {
	Panel   *disclosure.Panel
	Focused bool
	Width   int
	// Body renders the panel body at the given width. It is not called for
	// collapsed panels.
	Body func(width int) string
}

// View renders the panel.
func (v PanelView) View() string {
	header := v.Header()
	if !v.Panel.Expanded() {
		return header
	}

	bodyWidth := max(v.Width-2, 1)
	body := v.Panel.Body
	if v.Body != nil {
		body = v.Body(bodyWidth)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, styles.PanelBodyStyle.Render(body))
}

// Header renders the single header line with the state indicator.
func (v PanelView) Header() string {
	style := styles.PanelHeaderStyle
	if v.Focused {
		style = styles.PanelHeaderFocusStyle
	}
	return style.Width(v.Width).Render(v.Panel.Indicator() + " " + v.Panel.Title)
}
