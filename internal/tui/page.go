package tui

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/core/disclosure"
	"github.com/colonyops/folio/internal/core/motion"
	"github.com/colonyops/folio/internal/core/styles"
	"github.com/colonyops/folio/internal/tui/components"
)

// minPageWidth is the narrowest text column the page is laid out at.
const minPageWidth = 20

// pageSection is one mounted section of the guide.
type pageSection struct {
	section content.Section
	region  *motion.Region        // nil when the section does not move
	images  map[int]content.Asset // block index to asset, resolved at mount
}

// pageLayout is the result of laying out the page at one width.
type pageLayout struct {
	lines        []string
	sectionStart map[string]int // section id to first line
	panelLines   []int          // header line of each panel, in focus order
	shifts       []int          // shift applied to each section
}

// page owns the per-mount state of the guide: panel expansion and motion
// regions. A new page is built every time the content view is entered.
type page struct {
	doc      *content.Document
	md       *markdownRenderer
	sections []pageSection
	panels   []*disclosure.Panel // focus order
}

func newPage(doc *content.Document, assets content.Assets, md *markdownRenderer) *page {
	p := &page{doc: doc, md: md}
	for _, s := range doc.Sections {
		ps := pageSection{section: s, images: make(map[int]content.Asset)}
		if s.Motion != nil {
			ps.region = motion.NewRegion(*s.Motion)
		}

		for i, b := range s.Blocks {
			switch b.Kind() {
			case content.BlockPanel:
				p.panels = append(p.panels, disclosure.New(b.Panel.Title, b.Panel.Body))
			case content.BlockImage:
				ps.images[i] = assets.Resolve(*b.Image)
			}
		}
		p.sections = append(p.sections, ps)
	}
	return p
}

// mount subscribes every motion region to s.
func (p *page) mount(s *motion.Signal) {
	for _, ps := range p.sections {
		if ps.region != nil {
			ps.region.Mount(s)
		}
	}
}

// unmount releases every motion subscription.
func (p *page) unmount() {
	for _, ps := range p.sections {
		if ps.region != nil {
			ps.region.Unmount()
		}
	}
}

// shiftLimit bounds motion so the text column never drops below minPageWidth.
func shiftLimit(width, maxShift int) int {
	return max(min(maxShift, (width-minPageWidth)/2), 0)
}

// shifts returns the current shift of every section.
func (p *page) shifts(limit int) []int {
	out := make([]int, len(p.sections))
	for i, ps := range p.sections {
		if ps.region != nil {
			out[i] = ps.region.Shift(limit)
		}
	}
	return out
}

// render lays the page out at width. Each section is indented by a neutral
// margin of limit columns plus its motion shift, so shifts in [-limit, limit]
// never change the line count.
func (p *page) render(width, maxShift, focus int) pageLayout {
	limit := shiftLimit(width, maxShift)
	inner := max(width-2*limit, 1)

	layout := pageLayout{
		sectionStart: map[string]int{content.HomeSection: 0},
		shifts:       p.shifts(limit),
	}

	add := func(block string, indent int) {
		pad := strings.Repeat(" ", max(indent, 0))
		for _, line := range strings.Split(block, "\n") {
			layout.lines = append(layout.lines, pad+line)
		}
	}

	add(p.renderHero(inner), limit)

	panelIdx := 0
	for i, ps := range p.sections {
		indent := limit + layout.shifts[i]
		layout.sectionStart[ps.section.ID] = len(layout.lines)

		add("", 0)
		add(styles.SectionTitleStyle.Width(inner).Render(sectionTitle(ps.section)), indent)

		for j, b := range ps.section.Blocks {
			add("", 0)
			if b.Kind() == content.BlockPanel {
				layout.panelLines = append(layout.panelLines, len(layout.lines))
				view := components.PanelView{
					Panel:   p.panels[panelIdx],
					Focused: panelIdx == focus,
					Width:   inner,
					Body:    func(w int) string { return p.md.Render(b.Panel.Body, w) },
				}
				add(view.View(), indent)
				panelIdx++
				continue
			}
			if b.Kind() == content.BlockImage {
				add(renderAsset(ps.images[j], inner), indent)
				continue
			}
			add(p.renderBlock(b, inner), indent)
		}
	}
	add("", 0)

	return layout
}

func sectionTitle(s content.Section) string {
	if s.Icon != "" {
		return s.Icon + " " + s.Title
	}
	return s.Title
}

func (p *page) renderHero(width int) string {
	h := p.doc.Hero
	parts := []string{""}
	if h.Title != "" {
		parts = append(parts, styles.HeroTitleStyle.Width(width).Render(h.Title))
	}
	if h.Subtitle != "" {
		parts = append(parts, styles.HeroSubtitleStyle.Width(width).Render(h.Subtitle))
	}
	if h.Quote != "" {
		parts = append(parts, "", styles.HeroQuoteStyle.Width(width).Render(h.Quote))
	}
	if h.CTA != "" && h.CTATarget != "" {
		parts = append(parts, "", styles.HeroCTAStyle.Render(h.CTA)+" "+styles.TextMutedStyle.Render("(m)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p *page) renderBlock(b content.Block, width int) string {
	switch b.Kind() {
	case content.BlockHeading:
		return styles.StepHeadingStyle.Width(width).Render(b.Heading)
	case content.BlockText:
		return p.md.Render(b.Text, width)
	case content.BlockResources:
		return renderResources(b.Resources, width)
	default:
		return ""
	}
}

// renderAsset renders an image reference. Terminals cannot show the image, so
// an available file is shown by path and a missing one by a muted placeholder.
func renderAsset(a content.Asset, width int) string {
	if !a.Available {
		return styles.ImageMissingStyle.Width(width).Render(styles.IconImageMissing + " " + a.Label() + " (image unavailable)")
	}
	return styles.ImageStyle.Width(width).Render(styles.IconImage + " " + a.Label() + "  " + a.Path)
}

func renderResources(links []content.Link, width int) string {
	parts := []string{styles.ResourceTitleStyle.Render("相关资源")}
	for _, l := range links {
		parts = append(parts,
			styles.TextForegroundStyle.Width(width).Render(styles.IconLink+" "+l.Title),
			styles.ResourceLinkStyle.Width(width).Render("  "+l.URL),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// activeSection returns the id of the section shown at the top of the viewport.
func (l pageLayout) activeSection(p *page, yOffset int) string {
	active := content.HomeSection
	for _, ps := range p.sections {
		start, ok := l.sectionStart[ps.section.ID]
		if !ok || start > yOffset+1 {
			break
		}
		active = ps.section.ID
	}
	return active
}
