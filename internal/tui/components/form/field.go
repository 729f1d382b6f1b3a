package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	Label() string
	SetWidth(w int)
	SetError(msg string) // empty clears the error
}

// labelFor renders a field label with its required marker.
func labelFor(label string, required bool) string {
	if required {
		return label + " *"
	}
	return label
}
