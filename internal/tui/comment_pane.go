package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/folio/internal/core/comment"
	"github.com/colonyops/folio/internal/core/notify"
	"github.com/colonyops/folio/internal/core/styles"
	"github.com/colonyops/folio/internal/tui/components/form"
)

// Form variable names.
const (
	fieldAuthor  = "author"
	fieldContent = "content"
)

// CommentPaneOptions configures a CommentPane.
type CommentPaneOptions struct {
	Board         *comment.Board
	AuthorLimit   int
	ContentLimit  int
	DefaultAuthor string
}

// CommentPane is the comment board UI: a list of comments above a form that
// writes new comments or edits the selected one. The board itself outlives
// the pane; the pane only drives it.
type CommentPane struct {
	board         *comment.Board
	keys          keyMap
	form          *form.Dialog
	rules         map[string]form.FieldValidation
	defaultAuthor string
	selected      int
	width         int
	height        int
}

// NewCommentPane creates a pane bound to board. The form starts from the
// board's current draft.
func NewCommentPane(opts CommentPaneOptions) *CommentPane {
	author := form.NewTextField("姓名", "你的名字", "").Required().CharLimit(opts.AuthorLimit)
	body := form.NewTextAreaField("留言内容", "写下你的想法", "").Required().CharLimit(opts.ContentLimit)

	p := &CommentPane{
		board:         opts.Board,
		keys:          defaultKeyMap(),
		form:          form.NewDialog("", []form.Field{author, body}, []string{fieldAuthor, fieldContent}),
		defaultAuthor: opts.DefaultAuthor,
		rules: map[string]form.FieldValidation{
			fieldAuthor:  {Required: true, MaxLength: opts.AuthorLimit},
			fieldContent: {Required: true, MaxLength: opts.ContentLimit},
		},
		width:  40,
		height: 20,
	}
	p.form.Deactivate()
	p.loadDraft()
	p.updateFormChrome()
	return p
}

// Teardown discards the in-progress draft and edit target.
func (p *CommentPane) Teardown() {
	p.board.CancelEdit()
}

// SetSize sets the outer size of the pane.
func (p *CommentPane) SetSize(width, height int) {
	p.width = max(width, 20)
	p.height = max(height, 6)
	p.form.SetWidth(p.innerWidth())
}

// FormActive reports whether keystrokes go to the form.
func (p *CommentPane) FormActive() bool { return p.form.Active() }

// Blur takes focus away from the form.
func (p *CommentPane) Blur() { p.form.Deactivate() }

// Selected returns the index of the selected comment.
func (p *CommentPane) Selected() int { return p.selected }

// Update handles keys while the pane has focus.
func (p *CommentPane) Update(msg tea.Msg) tea.Cmd {
	if p.form.Active() {
		return p.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	comments := p.board.Comments()
	switch {
	case key.Matches(keyMsg, p.keys.CommentUp):
		p.selected = max(p.selected-1, 0)
	case key.Matches(keyMsg, p.keys.CommentDown):
		p.selected = min(p.selected+1, max(len(comments)-1, 0))
	case key.Matches(keyMsg, p.keys.CommentWrite):
		return p.form.Activate()
	case key.Matches(keyMsg, p.keys.CommentEdit):
		if p.selected >= len(comments) {
			return nil
		}
		if p.board.BeginEdit(comments[p.selected].ID) {
			p.loadDraft()
			p.updateFormChrome()
			p.form.FocusFirst()
			return p.form.Activate()
		}
	case key.Matches(keyMsg, p.keys.CommentDelete):
		if p.selected >= len(comments) {
			return nil
		}
		_, wasEditing := p.board.Editing()
		if p.board.Delete(comments[p.selected].ID) {
			if _, editing := p.board.Editing(); wasEditing && !editing {
				p.resetForm()
			}
			p.selected = min(p.selected, max(p.board.Len()-1, 0))
			return notifyCmd(notify.Info("留言已删除"))
		}
	}
	return nil
}

func (p *CommentPane) updateForm(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.form, cmd = p.form.Update(msg)

	switch {
	case p.form.Submitted():
		p.form.ClearFlags()
		return tea.Batch(cmd, p.submit())
	case p.form.Cancelled():
		p.form.ClearFlags()
		if _, editing := p.board.Editing(); editing {
			p.board.CancelEdit()
			p.resetForm()
		}
		p.form.Deactivate()
		return cmd
	}

	p.board.SetDraft(p.draft())
	return cmd
}

func (p *CommentPane) submit() tea.Cmd {
	switch p.board.Submit(p.draft()) {
	case comment.OutcomeCreated:
		p.selected = p.board.Len() - 1
		p.resetForm()
		return notifyCmd(notify.Info("留言已发布"))
	case comment.OutcomeUpdated:
		p.resetForm()
		return notifyCmd(notify.Info("留言已更新"))
	default:
		p.form.Validate(p.rules)
		return notifyCmd(notify.Warning("请填写姓名和留言内容"))
	}
}

func (p *CommentPane) draft() comment.Draft {
	values := p.form.FormValues()
	return comment.Draft{Author: values[fieldAuthor], Content: values[fieldContent]}
}

// loadDraft copies the board's draft into the form.
func (p *CommentPane) loadDraft() {
	d := p.board.Draft()
	if d.Empty() {
		d.Author = p.defaultAuthor
		p.board.SetDraft(d)
	}
	p.form.SetValues(map[string]string{fieldAuthor: d.Author, fieldContent: d.Content})
	p.form.ClearErrors()
}

// resetForm returns the form to new-comment mode with an empty draft.
func (p *CommentPane) resetForm() {
	p.board.SetDraft(comment.Draft{})
	p.loadDraft()
	p.updateFormChrome()
	p.form.FocusFirst()
}

func (p *CommentPane) updateFormChrome() {
	if id, editing := p.board.Editing(); editing {
		c, _ := p.board.Get(id)
		p.form.Title = styles.IconEdit + " 编辑留言 · " + c.Author
		p.form.Help = "ctrl+s: 保存  tab: 下一项  esc: 取消编辑"
		return
	}
	p.form.Title = styles.IconComment + " 发表留言"
	p.form.Help = "ctrl+s: 发布  tab: 下一项  esc: 返回列表"
}

func (p *CommentPane) innerWidth() int {
	return max(p.width-4, 10)
}

// View renders the pane. focused selects the border style.
func (p *CommentPane) View(focused bool) string {
	inner := p.innerWidth()
	innerHeight := max(p.height-2, 1)

	header := styles.TextPrimaryBoldStyle.Render(fmt.Sprintf("%s 留言板 (%d)", styles.IconComment, p.board.Len()))
	divider := styles.DividerStyle.Render(strings.Repeat("─", inner))
	formView := p.form.View()

	listHeight := innerHeight - 2 - lipgloss.Height(formView) - 1
	list := p.renderList(inner, listHeight, focused && !p.form.Active())

	body := lipgloss.JoinVertical(lipgloss.Left, header, divider, list, "", formView)
	lines := strings.Split(body, "\n")
	if len(lines) > innerHeight {
		lines = lines[len(lines)-innerHeight:]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	style := styles.CommentBoardStyle
	if focused {
		style = styles.CommentBoardFocusStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (p *CommentPane) renderList(width, height int, showCursor bool) string {
	comments := p.board.Comments()
	if len(comments) == 0 {
		return styles.CommentEmptyStyle.Width(width).Render("还没有留言，按 n 发表第一条")
	}
	if height <= 0 {
		return styles.TextMutedStyle.Render(fmt.Sprintf("… %d 条留言", len(comments)))
	}

	editingID, editing := p.board.Editing()
	blocks := make([]string, len(comments))
	for i, c := range comments {
		blocks[i] = renderComment(c, width, showCursor && i == p.selected, editing && c.ID == editingID)
	}

	// Scroll the list so the selected comment stays visible.
	start := 0
	for start < p.selected && blockHeight(blocks[start:p.selected+1]) > height {
		start++
	}

	var out []string
	used := 0
	for _, b := range blocks[start:] {
		h := lipgloss.Height(b)
		if used+h > height && used > 0 {
			break
		}
		out = append(out, b)
		used += h
	}
	return strings.Join(out, "\n")
}

func blockHeight(blocks []string) int {
	total := 0
	for _, b := range blocks {
		total += lipgloss.Height(b)
	}
	return total
}

func renderComment(c comment.Comment, width int, selected, editing bool) string {
	cursor := "  "
	authorStyle := styles.CommentAuthorStyle
	if selected {
		cursor = styles.CommentSelectedStyle.Render(styles.IconCursor + " ")
		authorStyle = styles.CommentSelectedStyle
	}

	header := cursor + authorStyle.Render(c.Author) + styles.TextMutedStyle.Render(" · "+c.CreatedAt.Format("15:04"))
	if editing {
		header += " " + styles.CommentEditingStyle.Render(styles.IconEdit+" 编辑中")
	}
	body := styles.CommentContentStyle.Width(max(width-2, 1)).Render(c.Content)

	lines := []string{header}
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, "  "+l)
	}
	return strings.Join(lines, "\n")
}
