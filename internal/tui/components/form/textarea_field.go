package form

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/colonyops/folio/internal/core/styles"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	input    textarea.Model
	label    string
	required bool
	errMsg   string
	focused  bool
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, defaultVal string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.SetWidth(40)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	return &TextAreaField{
		input: ta,
		label: label,
	}
}

// Required marks the field as required in its label.
func (f *TextAreaField) Required() *TextAreaField {
	f.required = true
	return f
}

// CharLimit caps the number of characters the input accepts. Zero means no limit.
func (f *TextAreaField) CharLimit(n int) *TextAreaField {
	f.input.CharLimit = n
	return f
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	parts := []string{titleStyle.Render(labelFor(f.label, f.required)), f.input.View()}
	if f.errMsg != "" {
		parts = append(parts, styles.FormErrorStyle.Render(f.errMsg))
	}

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) SetValue(v string) {
	f.input.SetValue(v)
}

// SetWidth sets the outer width, accounting for the field border.
func (f *TextAreaField) SetWidth(w int) { f.input.SetWidth(max(w-2, 1)) }

func (f *TextAreaField) SetError(msg string) { f.errMsg = msg }
func (f *TextAreaField) Focused() bool       { return f.focused }
func (f *TextAreaField) Value() string       { return f.input.Value() }
func (f *TextAreaField) Label() string       { return f.label }
