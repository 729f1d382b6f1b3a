package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/colonyops/folio/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	input    textinput.Model
	label    string
	required bool
	errMsg   string
	focused  bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(40)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		input: ti,
		label: label,
	}
}

// Required marks the field as required in its label.
func (f *TextField) Required() *TextField {
	f.required = true
	return f
}

// CharLimit caps the number of characters the input accepts. Zero means no limit.
func (f *TextField) CharLimit(n int) *TextField {
	f.input.CharLimit = n
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
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

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) SetValue(v string) {
	f.input.SetValue(v)
	f.input.CursorEnd()
}

// SetWidth sets the outer width, accounting for the field border.
func (f *TextField) SetWidth(w int) { f.input.SetWidth(max(w-2, 1)) }

func (f *TextField) SetError(msg string) { f.errMsg = msg }
func (f *TextField) Focused() bool       { return f.focused }
func (f *TextField) Value() string       { return f.input.Value() }
func (f *TextField) Label() string       { return f.label }
