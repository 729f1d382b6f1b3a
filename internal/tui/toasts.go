package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/folio/internal/core/notify"
	"github.com/colonyops/folio/internal/core/styles"
)

const (
	toastTTL          = 4 * time.Second
	maxToasts         = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 36
)

// notifyMsg asks the root model to show a toast.
type notifyMsg notify.Notification

func notifyCmd(n notify.Notification) tea.Cmd {
	return func() tea.Msg { return notifyMsg(n) }
}

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

type toast struct {
	notification notify.Notification
	remaining    time.Duration
}

// toastStack holds the visible toasts, oldest first.
type toastStack struct {
	toasts  []toast
	ticking bool
}

// push adds n, evicting the oldest toast past maxToasts. It returns the tick
// command when the countdown is not already running.
func (s *toastStack) push(n notify.Notification) tea.Cmd {
	s.toasts = append(s.toasts, toast{notification: n, remaining: toastTTL})
	if len(s.toasts) > maxToasts {
		s.toasts = s.toasts[len(s.toasts)-maxToasts:]
	}
	if s.ticking {
		return nil
	}
	s.ticking = true
	return scheduleToastTick()
}

// tick ages every toast by d and drops the expired ones. The countdown stops
// once the stack is empty.
func (s *toastStack) tick(d time.Duration) tea.Cmd {
	alive := s.toasts[:0]
	for _, t := range s.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	s.toasts = alive

	if len(s.toasts) == 0 {
		s.ticking = false
		return nil
	}
	return scheduleToastTick()
}

func (s *toastStack) dismissAll() {
	s.toasts = s.toasts[:0]
}

func (s *toastStack) len() int { return len(s.toasts) }

func (s *toastStack) view() string {
	if len(s.toasts) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		rendered = append(rendered, renderToast(t.notification))
	}
	return strings.Join(rendered, "\n")
}

func renderToast(n notify.Notification) string {
	icon, style := styles.IconNotifyInfo, styles.ToastInfoStyle
	switch n.Level {
	case notify.LevelError:
		icon, style = styles.IconNotifyError, styles.ToastErrorStyle
	case notify.LevelWarning:
		icon, style = styles.IconNotifyWarning, styles.ToastWarningStyle
	}
	return style.Width(toastWidth).Render(icon + " " + n.Message)
}

// overlay draws the stack in the lower-right corner of background, above the
// status bar.
func (s *toastStack) overlay(background string, width, height int) string {
	fg := s.view()
	if fg == "" {
		return background
	}

	x := max(width-lipgloss.Width(fg)-1, 0)
	y := max(height-lipgloss.Height(fg)-1, 0)

	return lipgloss.NewCompositor(
		lipgloss.NewLayer(background),
		lipgloss.NewLayer(fg).X(x).Y(y).Z(2),
	).Render()
}
