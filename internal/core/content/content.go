// Package content models the static guide rendered by folio: the hero, the
// navigation bar, and an ordered list of sections made of blocks.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed guide.yaml
var defaultGuide []byte

// Document is the whole guide.
type Document struct {
	Title        string       `yaml:"title"`
	Nav          []NavItem    `yaml:"nav"`
	Hero         Hero         `yaml:"hero"`
	Presentation Presentation `yaml:"presentation"`
	Sections     []Section    `yaml:"sections"`
}

// NavItem is an entry in the navigation bar that jumps to a section.
type NavItem struct {
	Label   string `yaml:"label"`
	Section string `yaml:"section"`
}

// Hero is the banner shown above the first section.
type Hero struct {
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	Quote     string `yaml:"quote"`
	CTA       string `yaml:"cta"`
	CTATarget string `yaml:"cta_target"`
}

// Presentation describes the external slide deck shown in presentation mode.
type Presentation struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Section is a titled part of the guide. A non-nil Motion makes the section a
// scroll-motion region with that speed.
type Section struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Icon   string   `yaml:"icon"`
	Motion *float64 `yaml:"motion"`
	Blocks []Block  `yaml:"blocks"`
}

// BlockKind identifies which field of a Block is populated.
type BlockKind int

const (
	BlockInvalid BlockKind = iota
	BlockHeading
	BlockText
	BlockImage
	BlockPanel
	BlockResources
)

// Block is one piece of section content. Exactly one field is set.
type Block struct {
	Heading   string `yaml:"heading,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Image     *Image `yaml:"image,omitempty"`
	Panel     *Panel `yaml:"panel,omitempty"`
	Resources []Link `yaml:"resources,omitempty"`
}

// Kind reports the block's kind, or BlockInvalid when zero or several fields are set.
func (b Block) Kind() BlockKind {
	kind, n := BlockInvalid, 0
	if b.Heading != "" {
		kind, n = BlockHeading, n+1
	}
	if b.Text != "" {
		kind, n = BlockText, n+1
	}
	if b.Image != nil {
		kind, n = BlockImage, n+1
	}
	if b.Panel != nil {
		kind, n = BlockPanel, n+1
	}
	if len(b.Resources) > 0 {
		kind, n = BlockResources, n+1
	}
	if n != 1 {
		return BlockInvalid
	}
	return kind
}

// Image references a static asset by path relative to the assets directory.
type Image struct {
	Path string `yaml:"path" json:"path"`
	Alt  string `yaml:"alt" json:"alt,omitempty"`
}

// Panel is a collapsible block. Body is markdown.
type Panel struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Link is an external resource.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Default returns the built-in guide.
func Default() (*Document, error) {
	return Parse(defaultGuide)
}

// Load reads a guide from path, or the built-in guide when path is empty.
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a YAML guide.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &doc, nil
}

// Validate checks section IDs are unique and every jump target exists.
func (d *Document) Validate() error {
	if len(d.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}

	seen := make(map[string]bool, len(d.Sections))
	for i, s := range d.Sections {
		if s.ID == "" {
			return fmt.Errorf("sections[%d]: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true

		for j, b := range s.Blocks {
			if b.Kind() == BlockInvalid {
				return fmt.Errorf("sections[%d].blocks[%d]: exactly one of heading, text, image, panel, resources must be set", i, j)
			}
		}
	}

	for i, n := range d.Nav {
		if n.Section != HomeSection && !seen[n.Section] {
			return fmt.Errorf("nav[%d]: unknown section %q", i, n.Section)
		}
	}

	if t := d.Hero.CTATarget; t != "" && !seen[t] {
		return fmt.Errorf("hero.cta_target: unknown section %q", t)
	}

	return nil
}

// HomeSection is the pseudo section ID for the top of the page.
const HomeSection = "home"

// Section returns the section with id.
func (d *Document) Section(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Images returns every image referenced by the document in order.
func (d *Document) Images() []Image {
	var out []Image
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			if b.Image != nil {
				out = append(out, *b.Image)
			}
		}
	}
	return out
}

// PanelCount returns the number of collapsible panels in the document.
func (d *Document) PanelCount() int {
	n := 0
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			if b.Panel != nil {
				n++
			}
		}
	}
	return n
}
