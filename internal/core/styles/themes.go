package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Accent     color.Color // hero banner and call to action
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themeDef lists a theme's base colors as hex. Surface is not listed: it is
// blended from the background toward the muted color so borders stay subtle.
type themeDef struct {
	primary, secondary, accent string
	fg, muted, bg              string
	success, warning, err      string
}

// surfaceBlend is how far Surface sits from Background toward Muted.
const surfaceBlend = 0.35

func (s themeDef) palette() Palette {
	return Palette{
		Primary:    lipgloss.Color(s.primary),
		Secondary:  lipgloss.Color(s.secondary),
		Accent:     lipgloss.Color(s.accent),
		Foreground: lipgloss.Color(s.fg),
		Muted:      lipgloss.Color(s.muted),
		Background: lipgloss.Color(s.bg),
		Surface:    lipgloss.Color(blendHex(s.bg, s.muted, surfaceBlend)),
		Success:    lipgloss.Color(s.success),
		Warning:    lipgloss.Color(s.warning),
		Error:      lipgloss.Color(s.err),
	}
}

// blendHex mixes two hex colors in Lab space. Unparseable input returns a.
func blendHex(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}

var themes = buildThemes(map[string]themeDef{
	"tokyo-night": {
		primary: "#7aa2f7", secondary: "#7dcfff", accent: "#bb9af7",
		fg: "#c0caf5", muted: "#565f89", bg: "#1a1b26",
		success: "#9ece6a", warning: "#e0af68", err: "#f7768e",
	},
	"gruvbox": {
		primary: "#83a598", secondary: "#8ec07c", accent: "#d3869b",
		fg: "#ebdbb2", muted: "#665c54", bg: "#282828",
		success: "#b8bb26", warning: "#fabd2f", err: "#fb4934",
	},
	"catppuccin": {
		primary: "#89b4fa", secondary: "#94e2d5", accent: "#cba6f7",
		fg: "#cdd6f4", muted: "#6c7086", bg: "#1e1e2e",
		success: "#a6e3a1", warning: "#f9e2af", err: "#f38ba8",
	},
	"onedark": {
		primary: "#61afef", secondary: "#56b6c2", accent: "#c678dd",
		fg: "#abb2bf", muted: "#5c6370", bg: "#282c34",
		success: "#98c379", warning: "#e5c07b", err: "#e06c75",
	},
	// Light theme for printed-page style terminals.
	"paper": {
		primary: "#1f6feb", secondary: "#0a7f86", accent: "#b3467a",
		fg: "#24292f", muted: "#8c959f", bg: "#fafaf7",
		success: "#1a7f37", warning: "#9a6700", err: "#cf222e",
	},
})

func buildThemes(defs map[string]themeDef) map[string]Palette {
	out := make(map[string]Palette, len(defs))
	for name, def := range defs {
		out[name] = def.palette()
	}
	return out
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme,
// with document margins removed so bodies line up under their headers.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	noMargin := uint(0)
	cfg.Document.Margin = &noMargin
	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary
	cfg.H4.Color = secondary
	cfg.H5.Color = secondary
	cfg.H6.Color = secondary

	cfg.Strong.Color = secondary
	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}
