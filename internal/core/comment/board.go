package comment

import (
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/folio/pkg/randid"
)

const (
	defaultIDLength = 8
	maxIDAttempts   = 16
)

// IDFunc produces candidate comment IDs. The board retries on collision.
type IDFunc func() string

// Option configures a Board.
type Option func(*Board)

// WithIDFunc overrides ID generation.
func WithIDFunc(fn IDFunc) Option {
	return func(b *Board) { b.newID = fn }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// WithLogger attaches a logger for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Board) { b.log = l }
}

// Board is an ordered collection of comments plus the form state bound to it.
// It is owned by the UI event loop and must not be shared across goroutines.
type Board struct {
	comments []Comment
	draft    Draft
	editing  *EditTarget

	issued map[string]struct{}
	newID  IDFunc
	now    func() time.Time
	log    zerolog.Logger
}

// NewBoard creates an empty board.
func NewBoard(opts ...Option) *Board {
	b := &Board{
		issued: make(map[string]struct{}),
		newID:  func() string { return randid.Generate(defaultIDLength) },
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Submit applies d to the board. An invalid draft is kept as the current draft
// so the form stays populated. With an edit target the target is rewritten in
// place; otherwise a new comment is appended.
func (b *Board) Submit(d Draft) Outcome {
	if !d.Valid() {
		b.draft = d
		b.log.Debug().Msg("comment draft rejected")
		return OutcomeRejected
	}

	if b.editing != nil {
		id := b.editing.CommentID
		idx := b.index(id)
		b.editing = nil
		b.draft = Draft{}
		if idx >= 0 {
			b.comments[idx].Author = d.Author
			b.comments[idx].Content = d.Content
			b.log.Debug().Str("comment_id", id).Msg("comment updated")
			return OutcomeUpdated
		}
		// target vanished underneath the edit; treat as a fresh comment
	}

	c := Comment{
		ID:        b.generateID(),
		Author:    d.Author,
		Content:   d.Content,
		CreatedAt: b.now(),
	}
	b.comments = append(b.comments, c)
	b.draft = Draft{}
	b.log.Debug().Str("comment_id", c.ID).Int("count", len(b.comments)).Msg("comment created")
	return OutcomeCreated
}

// BeginEdit makes id the edit target and loads its text into the draft. Any
// edit already in progress is discarded. Unknown ids are ignored.
func (b *Board) BeginEdit(id string) bool {
	idx := b.index(id)
	if idx < 0 {
		return false
	}
	c := b.comments[idx]
	b.editing = &EditTarget{CommentID: id}
	b.draft = Draft{Author: c.Author, Content: c.Content}
	return true
}

// CancelEdit drops the edit target and the draft without touching comments.
func (b *Board) CancelEdit() {
	b.editing = nil
	b.draft = Draft{}
}

// Delete removes the comment with id. Deleting the edit target ends the edit
// session. Unknown ids are ignored.
func (b *Board) Delete(id string) bool {
	idx := b.index(id)
	if idx < 0 {
		return false
	}
	b.comments = slices.Delete(b.comments, idx, idx+1)
	if b.editing != nil && b.editing.CommentID == id {
		b.CancelEdit()
	}
	b.log.Debug().Str("comment_id", id).Int("count", len(b.comments)).Msg("comment deleted")
	return true
}

// SetDraft replaces the draft, typically on every keystroke in the form.
func (b *Board) SetDraft(d Draft) {
	b.draft = d
}

// Draft returns the current draft.
func (b *Board) Draft() Draft {
	return b.draft
}

// Editing returns the edit target's ID, if any.
func (b *Board) Editing() (string, bool) {
	if b.editing == nil {
		return "", false
	}
	return b.editing.CommentID, true
}

// Comments returns a copy of the comments in insertion order.
func (b *Board) Comments() []Comment {
	return slices.Clone(b.comments)
}

// Get returns the comment with id.
func (b *Board) Get(id string) (Comment, bool) {
	idx := b.index(id)
	if idx < 0 {
		return Comment{}, false
	}
	return b.comments[idx], true
}

// Len returns the number of comments.
func (b *Board) Len() int {
	return len(b.comments)
}

func (b *Board) index(id string) int {
	return slices.IndexFunc(b.comments, func(c Comment) bool { return c.ID == id })
}

// generateID returns an ID never issued before by this board. IDs of deleted
// comments stay reserved.
func (b *Board) generateID() string {
	for range maxIDAttempts {
		id := b.newID()
		if _, taken := b.issued[id]; id != "" && !taken {
			b.issued[id] = struct{}{}
			return id
		}
	}
	// generator keeps colliding; fall back to a longer random id
	for {
		id := randid.Generate(defaultIDLength * 2)
		if _, taken := b.issued[id]; !taken {
			b.issued[id] = struct{}{}
			return id
		}
	}
}
