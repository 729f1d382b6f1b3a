package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/folio/internal/core/logging"
	"github.com/colonyops/folio/internal/core/styles"
)

const markdownCacheSize = 256

type markdownKey struct {
	width int
	text  string
}

// markdownRenderer renders markdown with glamour and caches the output per
// (text, width). Scrolling re-lays out the page on every step, so repeated
// renders must come from the cache.
type markdownRenderer struct {
	cache     *lru.Cache[markdownKey, string]
	renderers map[int]*glamour.TermRenderer
	log       zerolog.Logger
}

func newMarkdownRenderer() *markdownRenderer {
	cache, err := lru.New[markdownKey, string](markdownCacheSize)
	if err != nil {
		// only fails for a non-positive size
		panic(err)
	}
	return &markdownRenderer{
		cache:     cache,
		renderers: make(map[int]*glamour.TermRenderer),
		log:       logging.Component("markdown"),
	}
}

// Render returns text rendered at width. If glamour fails the raw text is
// returned so content is never lost.
func (r *markdownRenderer) Render(text string, width int) string {
	width = max(width, 10)
	key := markdownKey{width: width, text: text}
	if out, ok := r.cache.Get(key); ok {
		return out
	}

	out := text
	if tr, err := r.renderer(width); err != nil {
		r.log.Debug().Err(err).Int("width", width).Msg("glamour renderer unavailable")
	} else if rendered, err := tr.Render(text); err != nil {
		r.log.Debug().Err(err).Msg("markdown render failed, using raw text")
	} else {
		out = rendered
	}

	out = strings.Trim(out, "\n")
	r.cache.Add(key, out)
	return out
}

// Len returns the number of cached renders.
func (r *markdownRenderer) Len() int {
	return r.cache.Len()
}

func (r *markdownRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.renderers[width] = tr
	return tr, nil
}
