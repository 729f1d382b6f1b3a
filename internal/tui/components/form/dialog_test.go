package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialog(t *testing.T) {
	t.Run("creation focuses first field", func(t *testing.T) {
		f1 := NewTextField("姓名", "", "")
		f2 := NewTextField("邮箱", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"author", "email"})

		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.True(t, d.Active())
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
	})

	t.Run("empty dialog", func(t *testing.T) {
		d := NewDialog("Empty", []Field{}, []string{})
		assert.False(t, d.Submitted())
		assert.False(t, d.Cancelled())
		assert.Empty(t, d.FormValues())
	})

	t.Run("tab advances focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		f3 := NewTextField("C", "", "")
		d := NewDialog("Test", []Field{f1, f2, f3}, []string{"a", "b", "c"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.False(t, f1.Focused())
		assert.True(t, f2.Focused())

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.False(t, f2.Focused())
		assert.True(t, f3.Focused())
	})

	t.Run("tab past last field submits", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		assert.True(t, d.Submitted())
	})

	t.Run("ctrl+s submits from any field", func(t *testing.T) {
		f1 := NewTextAreaField("Body", "", "")
		f2 := NewTextField("Name", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"body", "name"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl}))
		assert.True(t, d.Submitted())
		assert.True(t, f1.Focused(), "focus is unchanged")
	})

	t.Run("shift+tab retreats focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
		require.True(t, f2.Focused())

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
	})

	t.Run("shift+tab on first field stays", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}))
		assert.True(t, f1.Focused())
		assert.False(t, d.Submitted())
	})

	t.Run("enter advances focus on non-textarea", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.False(t, f1.Focused())
		assert.True(t, f2.Focused())
	})

	t.Run("enter on textarea does not advance", func(t *testing.T) {
		f1 := NewTextAreaField("Body", "", "")
		f2 := NewTextField("Name", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"body", "name"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
		assert.False(t, d.Submitted())
	})

	t.Run("escape cancels and flags clear", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		d := NewDialog("Test", []Field{f1}, []string{"a"})

		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
		assert.True(t, d.Cancelled())
		assert.False(t, d.Submitted())

		d.ClearFlags()
		assert.False(t, d.Cancelled())
	})

	t.Run("FormValues and SetValues", func(t *testing.T) {
		f1 := NewTextField("Name", "", "Alice")
		f2 := NewTextAreaField("Body", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"author", "content"})

		d.SetValues(map[string]string{"content": "hello", "unknown": "x"})

		vals := d.FormValues()
		assert.Equal(t, "Alice", vals["author"])
		assert.Equal(t, "hello", vals["content"])
	})

	t.Run("Validate marks failing fields", func(t *testing.T) {
		f1 := NewTextField("Name", "", "   ")
		f2 := NewTextAreaField("Body", "", "hi")
		d := NewDialog("Test", []Field{f1, f2}, []string{"author", "content"})

		ok := d.Validate(map[string]FieldValidation{
			"author":  {Required: true},
			"content": {Required: true},
		})

		assert.False(t, ok)
		assert.Equal(t, "必填", f1.errMsg)
		assert.Empty(t, f2.errMsg)
		assert.Contains(t, f1.View(), "必填")

		d.ClearErrors()
		assert.Empty(t, f1.errMsg)
	})

	t.Run("Deactivate blurs and Activate restores focus", func(t *testing.T) {
		f1 := NewTextField("A", "", "")
		f2 := NewTextField("B", "", "")
		d := NewDialog("Test", []Field{f1, f2}, []string{"a", "b"})
		d.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))

		d.Deactivate()
		assert.False(t, d.Active())
		assert.False(t, f2.Focused())

		d.Activate()
		assert.True(t, f2.Focused(), "focus returns to the last field used")

		d.FocusFirst()
		assert.True(t, f1.Focused())
		assert.False(t, f2.Focused())
	})

	t.Run("view renders title, fields and help", func(t *testing.T) {
		f1 := NewTextField("Name", "enter name", "").Required()
		d := NewDialog("留言", []Field{f1}, []string{"name"})

		view := d.View()
		assert.Contains(t, view, "留言")
		assert.Contains(t, view, "Name *")
		assert.Contains(t, view, "ctrl+s")

		d.Deactivate()
		assert.NotContains(t, d.View(), "ctrl+s")
	})
}
