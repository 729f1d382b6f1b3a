package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/folio/internal/core/config"
	"github.com/colonyops/folio/internal/core/logging"
	"github.com/colonyops/folio/internal/core/notify"
	"github.com/colonyops/folio/internal/core/styles"
	"github.com/colonyops/folio/pkg/executil"
	"github.com/colonyops/folio/pkg/tmpl"
)

const openTimeout = 10 * time.Second

// presentationOpenedMsg reports the result of launching the browser.
type presentationOpenedMsg struct {
	err error
}

// PresentationViewOptions configures a PresentationView.
type PresentationViewOptions struct {
	Title       string
	URL         string
	OpenCommand string // shell template receiving config.OpenTemplateData
	Executor    executil.Executor
}

// PresentationView stands in for the embedded slide deck. A terminal cannot
// host the embed, so it shows the deck's title and address and can hand the
// address to the platform opener.
type PresentationView struct {
	title       string
	url         string
	openCommand string
	exec        executil.Executor
	keys        keyMap
	width       int
	height      int
	log         zerolog.Logger
}

// NewPresentationView creates the presentation view.
func NewPresentationView(opts PresentationViewOptions) *PresentationView {
	return &PresentationView{
		title:       opts.Title,
		url:         opts.URL,
		openCommand: opts.OpenCommand,
		exec:        opts.Executor,
		keys:        defaultKeyMap(),
		width:       80,
		height:      20,
		log:         logging.Component("presentation"),
	}
}

// SetSize sets the area available to the view.
func (v *PresentationView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Update handles the open action. Exiting is handled by the caller.
func (v *PresentationView) Update(ctx context.Context, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !key.Matches(keyMsg, v.keys.Open) {
		return nil
	}
	return v.Open(ctx)
}

// Open renders the open command and runs it in the background.
func (v *PresentationView) Open(ctx context.Context) tea.Cmd {
	if v.url == "" {
		return notifyCmd(notify.Warning("未配置演示地址"))
	}

	cmdline, err := tmpl.Render(v.openCommand, config.OpenTemplateData{URL: v.url, Title: v.title})
	if err != nil {
		return notifyCmd(notify.Error("open_command: " + err.Error()))
	}

	exec := v.exec
	log := v.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, openTimeout)
		defer cancel()

		err := exec.RunSh(ctx, "", cmdline)
		if err != nil {
			log.Warn().Ctx(ctx).Err(err).Str("cmd", cmdline).Msg("failed to open presentation")
		} else {
			log.Info().Ctx(ctx).Str("url", v.url).Msg("presentation opened")
		}
		return presentationOpenedMsg{err: err}
	}
}

// View renders the presentation frame centered in the view area.
func (v *PresentationView) View() string {
	frameWidth := min(max(v.width-8, 20), 72)
	inner := max(frameWidth-8, 10)

	title := v.title
	if title == "" {
		title = "演示"
	}
	url := v.url
	if url == "" {
		url = "(未配置演示地址)"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.PresentationTitleStyle.Width(inner).Render(styles.IconPresentation+" "+title),
		"",
		styles.PresentationURLStyle.Width(inner).Render(url),
		"",
		styles.TextMutedStyle.Width(inner).Render("终端无法嵌入演示文稿，可在浏览器中打开。"),
		"",
		styles.HeroCTAStyle.Render("o 在浏览器中打开")+"  "+styles.ToggleButtonStyle.Render("esc 退出演示"),
	)
	frame := styles.PresentationFrameStyle.Render(body)

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, frame)
}
