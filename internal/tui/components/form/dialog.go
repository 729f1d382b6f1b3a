package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/colonyops/folio/internal/core/styles"
)

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields. A dialog can stay on screen across
// submissions: callers read Submitted or Cancelled and then call ClearFlags.
type Dialog struct {
	fields       []Field
	variables    []string // parallel slice: variable name for each field
	focusedField int
	active       bool
	submitted    bool
	cancelled    bool
	Title        string
	Help         string
}

// DefaultHelp is the key hint line shown under the fields.
const DefaultHelp = "tab: next  shift+tab: prev  ctrl+s: submit  esc: cancel"

// NewDialog creates a form dialog with the given fields and variable names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, variables []string) *Dialog {
	d := &Dialog{
		fields:    fields,
		variables: variables,
		Title:     title,
		Help:      DefaultHelp,
	}
	d.Activate()
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "ctrl+s":
		d.submitted = true
		return d, nil
	case "enter":
		if d.isTextAreaFocused() {
			// Let textarea handle enter for newline insertion
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.FormTitleStyle.Render(d.Title), "")
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	if d.active && d.Help != "" {
		parts = append(parts, "", styles.FormHelpStyle.Render(d.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of variable names to field values.
func (d *Dialog) FormValues() map[string]string {
	result := make(map[string]string, len(d.fields))
	for i, field := range d.fields {
		result[d.variables[i]] = field.Value()
	}
	return result
}

// SetValues fills fields by variable name. Unknown names are ignored.
func (d *Dialog) SetValues(values map[string]string) {
	for i, name := range d.variables {
		if v, ok := values[name]; ok {
			d.fields[i].SetValue(v)
		}
	}
}

// Validate applies rules by variable name, showing messages on the fields.
// It returns true when every field passes.
func (d *Dialog) Validate(rules map[string]FieldValidation) bool {
	ok := true
	for i, name := range d.variables {
		msg := rules[name].ValidateText(d.fields[i].Value())
		d.fields[i].SetError(msg)
		if msg != "" {
			ok = false
		}
	}
	return ok
}

// ClearErrors removes validation messages from every field.
func (d *Dialog) ClearErrors() {
	for _, f := range d.fields {
		f.SetError("")
	}
}

// SetWidth sets the width of every field.
func (d *Dialog) SetWidth(w int) {
	for _, f := range d.fields {
		f.SetWidth(w)
	}
}

// Activate focuses the current field, or the first field on a new dialog.
func (d *Dialog) Activate() tea.Cmd {
	d.active = true
	if len(d.fields) == 0 {
		return nil
	}
	return d.fields[d.focusedField].Focus()
}

// Deactivate blurs every field without changing their values.
func (d *Dialog) Deactivate() {
	d.active = false
	for _, f := range d.fields {
		f.Blur()
	}
}

// Active reports whether the dialog holds keyboard focus.
func (d *Dialog) Active() bool { return d.active }

// FocusFirst moves focus back to the first field.
func (d *Dialog) FocusFirst() tea.Cmd {
	if len(d.fields) == 0 {
		return nil
	}
	d.fields[d.focusedField].Blur()
	d.focusedField = 0
	if !d.active {
		return nil
	}
	return d.fields[0].Focus()
}

// ClearFlags resets the submitted and cancelled flags.
func (d *Dialog) ClearFlags() {
	d.submitted = false
	d.cancelled = false
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		// Past the last field: submit
		d.submitted = true
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField = next
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}

	d.fields[d.focusedField].Blur()
	d.focusedField--
	cmd := d.fields[d.focusedField].Focus()
	return d, cmd
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isTextAreaFocused() bool {
	if len(d.fields) == 0 {
		return false
	}
	_, ok := d.fields[d.focusedField].(*TextAreaField)
	return ok
}
