// Package components provides reusable TUI components.
package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/folio/internal/core/styles"
)

// HelpDialogSection groups related bindings under a title.
type HelpDialogSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpDialog lists every enabled key binding. Sections flow into additional
// columns when they do not fit the available height.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
}

// NewHelpDialog creates a help dialog.
func NewHelpDialog(title string, sections []HelpDialogSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// View renders the dialog without a height limit.
func (h *HelpDialog) View() string {
	return h.render(0)
}

// Overlay renders the dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	// border, padding, title, and footer take eight rows
	return Center(background, h.render(max(height-8, 4)), width, height)
}

func (h *HelpDialog) render(maxRows int) string {
	var columns []string
	var column []string
	for _, section := range h.sections {
		block := sectionLines(section)
		if len(block) == 0 {
			continue
		}
		if maxRows > 0 && len(column) > 0 && len(column)+1+len(block) > maxRows {
			columns = append(columns, strings.Join(column, "\n"))
			column = nil
		}
		if len(column) > 0 {
			column = append(column, "")
		}
		column = append(column, block...)
	}
	if len(column) > 0 {
		columns = append(columns, strings.Join(column, "\n"))
	}

	for i := range columns[:max(len(columns)-1, 0)] {
		columns[i] = lipgloss.NewStyle().PaddingRight(4).Render(columns[i])
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundBoldStyle.Render(h.title),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, columns...),
		styles.HelpDialogHelpStyle.Render("esc/? close"),
	)
	return styles.HelpDialogModalStyle.Render(content)
}

func sectionLines(section HelpDialogSection) []string {
	var entries []string
	for _, b := range section.Bindings {
		if !b.Enabled() && len(b.Keys()) > 0 {
			continue
		}
		help := b.Help()
		if help.Key == "" {
			continue
		}
		entries = append(entries, formatKeyDesc(help.Key, help.Desc))
	}
	if len(entries) == 0 {
		return nil
	}
	return append([]string{styles.HelpDialogSectionStyle.Render(section.Title)}, entries...)
}

// Center composites fg over bg, centered in a width x height area.
func Center(bg, fg string, width, height int) string {
	fgLayer := lipgloss.NewLayer(fg).
		X(max((width-lipgloss.Width(fg))/2, 0)).
		Y(max((height-lipgloss.Height(fg))/2, 0)).
		Z(1)
	return lipgloss.NewCompositor(lipgloss.NewLayer(bg), fgLayer).Render()
}

// formatKeyDesc pads the key by display width so wide runes line up.
func formatKeyDesc(k, desc string) string {
	const keyWidth = 12
	padded := k + strings.Repeat(" ", max(keyWidth-lipgloss.Width(k), 0))
	return styles.TextPrimaryBoldStyle.Render(padded) + styles.TextForegroundStyle.Render(desc)
}
