// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorAccent     color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	CheckPassStyle     lipgloss.Style
	CheckWarnStyle     lipgloss.Style
	CheckFailStyle     lipgloss.Style

	// Text helpers.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style

	// Page chrome.
	HeaderTitleStyle  lipgloss.Style
	NavActiveStyle    lipgloss.Style
	NavNormalStyle    lipgloss.Style
	ToggleButtonStyle lipgloss.Style
	StatusBarStyle    lipgloss.Style

	// Hero banner.
	HeroTitleStyle    lipgloss.Style
	HeroSubtitleStyle lipgloss.Style
	HeroQuoteStyle    lipgloss.Style
	HeroCTAStyle      lipgloss.Style

	// Sections and blocks.
	SectionTitleStyle     lipgloss.Style
	StepHeadingStyle      lipgloss.Style
	PanelHeaderStyle      lipgloss.Style
	PanelHeaderFocusStyle lipgloss.Style
	PanelBodyStyle        lipgloss.Style
	ImageStyle            lipgloss.Style
	ImageMissingStyle     lipgloss.Style
	ResourceTitleStyle    lipgloss.Style
	ResourceLinkStyle     lipgloss.Style

	// Comment board.
	CommentBoardStyle       lipgloss.Style
	CommentBoardFocusStyle  lipgloss.Style
	CommentAuthorStyle      lipgloss.Style
	CommentContentStyle     lipgloss.Style
	CommentSelectedStyle    lipgloss.Style
	CommentEditingStyle     lipgloss.Style
	CommentEmptyStyle       lipgloss.Style

	// Forms.
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Presentation view.
	PresentationFrameStyle lipgloss.Style
	PresentationTitleStyle lipgloss.Style
	PresentationURLStyle   lipgloss.Style

	// Overlays.
	ModalStyle             lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalHelpStyle         lipgloss.Style
	ConfirmMessageStyle    lipgloss.Style
	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogKeyStyle     lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style
	ToastInfoStyle         lipgloss.Style
	ToastWarningStyle      lipgloss.Style
	ToastErrorStyle        lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorAccent = p.Accent
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	CheckPassStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	CheckWarnStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	CheckFailStyle = lipgloss.NewStyle().Foreground(ColorError)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	HeaderTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	NavActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)
	NavNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	ToggleButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	HeroTitleStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
	HeroSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	HeroQuoteStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	HeroCTAStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorAccent).
		Foreground(ColorBackground).
		Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	StepHeadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	PanelHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingLeft(1)
	PanelHeaderFocusStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		PaddingLeft(1)
	PanelBodyStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorSurface).
		PaddingLeft(1)
	ImageStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	ImageMissingStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	ResourceTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	ResourceLinkStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)

	CommentBoardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CommentBoardFocusStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	CommentAuthorStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	CommentContentStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	CommentSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommentEditingStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	CommentEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	PresentationFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorAccent).
		Padding(1, 3)
	PresentationTitleStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
	PresentationURLStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ConfirmMessageStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		MarginBottom(1)
	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	HelpDialogKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Width(12)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary).Foreground(ColorForeground)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning).Foreground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError).Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
