// Package viewmode switches the program between the guide content and the
// external presentation.
package viewmode

// Mode is the active top-level view.
type Mode int

const (
	Content Mode = iota
	Presentation
)

func (m Mode) String() string {
	switch m {
	case Presentation:
		return "presentation"
	default:
		return "content"
	}
}

// Controller holds the single active mode. Generation increases each time the
// content view is entered so callers can rebuild that subtree from scratch.
type Controller struct {
	mode       Mode
	generation int
}

// New returns a controller in Content mode.
func New() *Controller {
	return &Controller{mode: Content, generation: 1}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Generation identifies the current mount of the content view.
func (c *Controller) Generation() int {
	return c.generation
}

// Toggle flips between Content and Presentation and returns the new mode.
func (c *Controller) Toggle() Mode {
	if c.mode == Content {
		c.mode = Presentation
	} else {
		c.mode = Content
		c.generation++
	}
	return c.mode
}

// Exit leaves the presentation. It does nothing in Content mode.
func (c *Controller) Exit() Mode {
	if c.mode == Presentation {
		return c.Toggle()
	}
	return c.mode
}
