// Package disclosure implements collapsible content panels.
package disclosure

import "github.com/colonyops/folio/internal/core/styles"

// Panel is a titled block of content that is either collapsed or expanded.
// Each panel owns its own state; opening one panel never closes another.
type Panel struct {
	Title string
	Body  string

	expanded bool
}

// New creates a collapsed panel.
func New(title, body string) *Panel {
	return &Panel{Title: title, Body: body}
}

// Toggle flips the panel between collapsed and expanded.
func (p *Panel) Toggle() {
	p.expanded = !p.expanded
}

// Expanded reports whether the body is visible.
func (p *Panel) Expanded() bool {
	return p.expanded
}

// Collapse resets the panel to its initial state.
func (p *Panel) Collapse() {
	p.expanded = false
}

// Indicator returns the marker shown next to the header for the current state.
func (p *Panel) Indicator() string {
	if p.expanded {
		return styles.IconChevronUp
	}
	return styles.IconChevronDown
}
