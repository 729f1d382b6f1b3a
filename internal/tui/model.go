// Package tui implements the Bubble Tea TUI for folio.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/folio/internal/core/comment"
	"github.com/colonyops/folio/internal/core/config"
	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/core/logging"
	"github.com/colonyops/folio/internal/core/notify"
	"github.com/colonyops/folio/internal/core/viewmode"
	"github.com/colonyops/folio/internal/tui/components"
	"github.com/colonyops/folio/pkg/executil"
)

// Layout thresholds.
const (
	sidePaneMinWidth = 90 // narrower terminals show the comment board in place of the page
	sidePaneMinCols  = 34
	sidePaneMaxCols  = 50
	headerLines      = 1
	statusLines      = 1
)

// UIState represents the modal state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateShowingHelp
	stateConfirmingQuit
)

// focusArea is the part of the content view receiving keys.
type focusArea int

const (
	focusPage focusArea = iota
	focusComments
)

// Options configures the TUI model.
type Options struct {
	Config   *config.Config
	Document *content.Document
	Assets   content.Assets
	Board    *comment.Board    // nil creates an empty board
	Executor executil.Executor // nil uses the real shell
	Context  context.Context
}

// Model is the root Bubble Tea model. The comment board lives here, above the
// view mode switch, so it survives toggling; everything below the switch is
// rebuilt on each entry into the content view.
type Model struct {
	cfg    *config.Config
	doc    *content.Document
	assets content.Assets
	md     *markdownRenderer
	exec   executil.Executor
	ctx    context.Context
	log    zerolog.Logger

	modes      *viewmode.Controller
	generation int // content generation the current subtree was built for
	board      *comment.Board

	// Content subtree, rebuilt per generation.
	page     *ContentView
	comments *CommentPane

	presentation *PresentationView

	keys       keyMap
	help       help.Model
	helpDialog *components.HelpDialog
	confirm    components.ConfirmModal
	toasts     toastStack

	state      UIState
	focus      focusArea
	paneHidden bool
	width      int
	height     int
	quitting   bool
}

// New creates the root model in content mode.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	board := opts.Board
	if board == nil {
		board = comment.NewBoard(comment.WithLogger(logging.Component("comments")))
	}
	exec := opts.Executor
	if exec == nil {
		exec = &executil.RealExecutor{}
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	title, url := opts.Document.Presentation.Title, opts.Document.Presentation.URL
	if cfg.Presentation.Title != "" {
		title = cfg.Presentation.Title
	}
	if cfg.Presentation.URL != "" {
		url = cfg.Presentation.URL
	}

	keys := defaultKeyMap()
	m := Model{
		cfg:    cfg,
		doc:    opts.Document,
		assets: opts.Assets,
		md:     newMarkdownRenderer(),
		exec:   exec,
		ctx:    ctx,
		log:    logging.Component("tui"),
		modes:  viewmode.New(),
		board:  board,
		presentation: NewPresentationView(PresentationViewOptions{
			Title:       title,
			URL:         url,
			OpenCommand: cfg.Presentation.OpenCommand,
			Executor:    exec,
		}),
		keys:       keys,
		help:       help.New(),
		helpDialog: components.NewHelpDialog("Keyboard shortcuts", keys.helpSections()),
		width:      80,
		height:     24,
	}
	m.mountContent()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.log.Info().Ctx(m.viewCtx()).
		Int("sections", len(m.doc.Sections)).
		Int("panels", m.doc.PanelCount()).
		Msg("page loaded")
	return nil
}

// Mode returns the active view mode.
func (m Model) Mode() viewmode.Mode { return m.modes.Mode() }

// Board returns the comment board shared by every content generation.
func (m Model) Board() *comment.Board { return m.board }

// ContentView returns the current content subtree, nil in presentation mode.
func (m Model) ContentView() *ContentView { return m.page }

// CommentPane returns the current comment pane, nil in presentation mode.
func (m Model) CommentPane() *CommentPane { return m.comments }

// State returns the modal state.
func (m Model) State() UIState { return m.state }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	case notifyMsg:
		return m, m.toasts.push(notify.Notification(msg))
	case toastTickMsg:
		return m, m.toasts.tick(toastTickInterval)
	case presentationOpenedMsg:
		if msg.err != nil {
			return m, notifyCmd(notify.Error("无法打开演示: " + msg.err.Error()))
		}
		return m, notifyCmd(notify.Info("已在浏览器中打开演示"))
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case tea.MouseWheelMsg:
		if m.page != nil && m.state == stateNormal {
			return m, m.page.Update(msg)
		}
		return m, nil
	}

	// Cursor blink and similar messages belong to the comment form.
	if m.comments != nil && m.comments.FormActive() {
		return m, m.comments.Update(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateShowingHelp:
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" || msg.String() == "q" {
			m.state = stateNormal
		}
		return m, nil
	case stateConfirmingQuit:
		m.confirm, _ = m.confirm.Update(msg)
		switch {
		case m.confirm.Confirmed():
			return m.quit()
		case m.confirm.Cancelled():
			m.state = stateNormal
		}
		return m, nil
	}

	// The comment form swallows every key, including q and p.
	if m.comments != nil && m.comments.FormActive() {
		if msg.String() == "ctrl+c" {
			return m.requestQuit()
		}
		return m, m.comments.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.requestQuit()
	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
		return m, nil
	}

	if m.modes.Mode() == viewmode.Presentation {
		return m.handlePresentationKey(msg)
	}
	return m.handleContentKey(msg)
}

func (m Model) handlePresentationKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		m.modes.Exit()
		m.enterMode()
		return m, nil
	}
	return m, m.presentation.Update(m.viewCtx(), msg)
}

func (m Model) handleContentKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusComments {
		if key.Matches(msg, m.keys.CommentBack) {
			m.focus = focusPage
			m.layout()
			return m, nil
		}
		return m, m.comments.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.modes.Toggle()
		m.enterMode()
		return m, nil
	case key.Matches(msg, m.keys.Comments):
		m.focus = focusComments
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.HidePane):
		m.paneHidden = !m.paneHidden
		m.layout()
		return m, nil
	}
	return m, m.page.Update(msg)
}

// enterMode reconciles the subtree with the controller after a toggle.
func (m *Model) enterMode() {
	switch m.modes.Mode() {
	case viewmode.Presentation:
		m.unmountContent()
	default:
		if m.page == nil || m.generation != m.modes.Generation() {
			m.unmountContent()
			m.mountContent()
		}
	}
	m.focus = focusPage
	m.layout()
	m.log.Debug().Ctx(m.viewCtx()).Int("generation", m.modes.Generation()).Msg("view mode changed")
}

// mountContent builds a fresh content subtree for the current generation.
func (m *Model) mountContent() {
	m.page = NewContentView(ContentViewOptions{
		Document:   m.doc,
		Assets:     m.assets,
		Markdown:   m.md,
		MaxShift:   m.cfg.MotionShift(),
		ScrollStep: m.cfg.TUI.ScrollStep,
	})
	m.comments = NewCommentPane(CommentPaneOptions{
		Board:         m.board,
		AuthorLimit:   m.cfg.Comments.AuthorLimit,
		ContentLimit:  m.cfg.Comments.ContentLimit,
		DefaultAuthor: m.cfg.Comments.DefaultAuthor,
	})
	m.generation = m.modes.Generation()
	m.layout()
}

// unmountContent tears the content subtree down. Comments stay on the board;
// the draft and edit target do not.
func (m *Model) unmountContent() {
	if m.page != nil {
		m.page.Teardown()
		m.page = nil
	}
	if m.comments != nil {
		m.comments.Teardown()
		m.comments = nil
	}
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.board.Len() == 0 {
		return m.quit()
	}
	m.confirm = components.NewConfirmModal("退出", "留言只保存在本次会话中，退出后将全部丢失。")
	m.state = stateConfirmingQuit
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.unmountContent()
	m.log.Info().Ctx(m.viewCtx()).Int("comments", m.board.Len()).Msg("quitting")
	return m, tea.Quit
}

// sidePaneVisible reports whether the comment board sits beside the page.
func (m Model) sidePaneVisible() bool {
	return !m.paneHidden && m.width >= sidePaneMinWidth
}

func (m Model) sidePaneWidth() int {
	return min(max(m.width/3, sidePaneMinCols), sidePaneMaxCols)
}

// layout pushes the current size to the mounted views.
func (m *Model) layout() {
	bodyHeight := max(m.height-headerLines-statusLines, 1)
	m.help.SetWidth(max(m.width-6, 0))
	m.presentation.SetSize(m.width, bodyHeight)

	if m.page == nil {
		return
	}
	switch {
	case m.sidePaneVisible():
		paneWidth := m.sidePaneWidth()
		m.page.SetSize(m.width-paneWidth, bodyHeight)
		m.comments.SetSize(paneWidth, bodyHeight)
	default:
		m.page.SetSize(m.width, bodyHeight)
		m.comments.SetSize(m.width, bodyHeight)
	}
}

// viewCtx stamps the active mode onto the logging context.
func (m Model) viewCtx() context.Context {
	return logging.WithView(m.ctx, m.modes.Mode().String())
}
