package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/folio/internal/core/content"
	"github.com/colonyops/folio/internal/core/motion"
	"github.com/colonyops/folio/pkg/tuitest"
)

func TestShiftLimit(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		maxShift int
		want     int
	}{
		{name: "wide terminal uses max", width: 120, maxShift: 6, want: 6},
		{name: "narrow terminal shrinks", width: 30, maxShift: 6, want: 5},
		{name: "tiny terminal disables", width: 15, maxShift: 6, want: 0},
		{name: "disabled", width: 120, maxShift: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shiftLimit(tt.width, tt.maxShift))
		})
	}
}

func TestPage_MountAndUnmount(t *testing.T) {
	doc := testGuide(t)
	p := newPage(doc, content.NewAssets(""), newMarkdownRenderer())
	s := motion.NewSignal()

	p.mount(s)
	assert.Equal(t, 1, s.Subscribers(), "only sections with motion subscribe")

	s.Publish(motion.Position{Offset: 4, Width: 80, Height: 10})
	assert.Equal(t, []int{2, 0}, p.shifts(6))

	p.unmount()
	assert.Equal(t, 0, s.Subscribers())
	assert.Equal(t, []int{0, 0}, p.shifts(6))
}

func TestPage_RenderIndentsMovingSections(t *testing.T) {
	doc := testGuide(t)
	p := newPage(doc, content.NewAssets(""), newMarkdownRenderer())
	s := motion.NewSignal()
	p.mount(s)
	t.Cleanup(p.unmount)

	still := p.render(80, 6, -1)
	s.Publish(motion.Position{Offset: 6, Width: 80, Height: 10})
	moved := p.render(80, 6, -1)

	require.Len(t, moved.lines, len(still.lines))
	assert.Equal(t, []int{3, 0}, moved.shifts)

	title := still.sectionStart["one"] + 1
	assert.Equal(t, "      Section One", tuitest.StripANSI(still.lines[title]))
	assert.Equal(t, "         Section One", tuitest.StripANSI(moved.lines[title]))

	two := still.sectionStart["two"] + 1
	assert.Equal(t, tuitest.StripANSI(still.lines[two]), tuitest.StripANSI(moved.lines[two]))
}

func TestPage_RenderPanels(t *testing.T) {
	doc := testGuide(t)
	p := newPage(doc, content.NewAssets(""), newMarkdownRenderer())

	layout := p.render(80, 0, 1)
	require.Len(t, layout.panelLines, 2)
	assert.Contains(t, tuitest.StripANSI(layout.lines[layout.panelLines[0]]), "Panel A")
	assert.Contains(t, tuitest.StripANSI(layout.lines[layout.panelLines[1]]), "Panel B")
	assert.Contains(t, layout.lines[layout.panelLines[0]], "▾")
}

func TestPageLayout_ActiveSection(t *testing.T) {
	doc := testGuide(t)
	p := newPage(doc, content.NewAssets(""), newMarkdownRenderer())
	layout := p.render(80, 0, -1)

	assert.Equal(t, content.HomeSection, layout.activeSection(p, 0))
	assert.Equal(t, "one", layout.activeSection(p, layout.sectionStart["one"]))
	assert.Equal(t, "two", layout.activeSection(p, layout.sectionStart["two"]+3))
}

func TestPage_ImagesResolvedOnce(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "missing.png")
	require.NoError(t, os.WriteFile(img, []byte("png"), 0o644))

	p := newPage(testGuide(t), content.NewAssets(dir), newMarkdownRenderer())
	require.NoError(t, os.Remove(img))

	out := tuitest.StripANSI(strings.Join(p.render(200, 0, -1).lines, "\n"))
	assert.Contains(t, out, "Missing shot")
	assert.NotContains(t, out, "image unavailable", "relayout must not stat the file again")
}
