package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/folio/internal/tui/components"
)

// keyMap holds every binding the TUI recognizes.
type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Toggle   key.Binding
	Comments key.Binding
	HidePane key.Binding

	// Page
	Up          key.Binding
	Down        key.Binding
	HalfUp      key.Binding
	HalfDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	NextPanel   key.Binding
	PrevPanel   key.Binding
	TogglePanel key.Binding
	LearnMore   key.Binding
	Jump        key.Binding

	// Comment board
	CommentUp     key.Binding
	CommentDown   key.Binding
	CommentWrite  key.Binding
	CommentEdit   key.Binding
	CommentDelete key.Binding
	CommentBack   key.Binding

	// Presentation
	Open key.Binding
	Exit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Toggle:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "查看演示 / 返回内容")),
		Comments: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comments")),
		HidePane: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "show/hide comments")),

		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		HalfUp:      key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "half page up")),
		HalfDown:    key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "half page down")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		NextPanel:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevPanel:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous panel")),
		TogglePanel: key.NewBinding(key.WithKeys("enter", "space", " "), key.WithHelp("enter", "expand/collapse")),
		LearnMore:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "了解更多")),
		Jump:        key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to section")),

		CommentUp:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous comment")),
		CommentDown:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next comment")),
		CommentWrite:  key.NewBinding(key.WithKeys("n", "i", "enter"), key.WithHelp("n", "write")),
		CommentEdit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		CommentDelete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		CommentBack:   key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "back to page")),

		Open: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in browser")),
		Exit: key.NewBinding(key.WithKeys("esc", "p"), key.WithHelp("esc", "退出演示")),
	}
}

// pageShortHelp is shown in the status bar while the page has focus.
func (k keyMap) pageShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextPanel, k.TogglePanel, k.Jump, k.Comments, k.Toggle, k.Help, k.Quit}
}

// commentShortHelp is shown in the status bar while the comment list has focus.
func (k keyMap) commentShortHelp() []key.Binding {
	return []key.Binding{k.CommentDown, k.CommentWrite, k.CommentEdit, k.CommentDelete, k.CommentBack}
}

// presentationShortHelp is shown in the status bar in presentation mode.
func (k keyMap) presentationShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Exit, k.Help, k.Quit}
}

// helpSections groups the bindings for the help dialog.
func (k keyMap) helpSections() []components.HelpDialogSection {
	section := func(title string, bindings ...key.Binding) components.HelpDialogSection {
		return components.HelpDialogSection{Title: title, Bindings: bindings}
	}

	return []components.HelpDialogSection{
		section("Page", k.Up, k.Down, k.HalfUp, k.HalfDown, k.Top, k.Bottom, k.Jump, k.LearnMore),
		section("Panels", k.NextPanel, k.PrevPanel, k.TogglePanel),
		section("Comments", k.Comments, k.HidePane, k.CommentUp, k.CommentDown, k.CommentWrite, k.CommentEdit, k.CommentDelete),
		section("Comment form",
			key.NewBinding(key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithHelp("ctrl+s", "submit")),
			key.NewBinding(key.WithHelp("esc", "cancel edit / leave form")),
		),
		section("Presentation", k.Toggle, k.Open, k.Exit),
		section("General", k.Help, k.Quit),
	}
}
