// Package comment holds the in-memory comment board. Comments live only for
// the lifetime of the process; nothing is written to disk.
package comment

import (
	"strings"
	"time"
)

// Comment is a single entry on the board. ID never changes after creation.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft is the text currently bound to the comment form.
type Draft struct {
	Author  string
	Content string
}

// Empty reports whether both fields are blank.
func (d Draft) Empty() bool {
	return d.Author == "" && d.Content == ""
}

// Valid reports whether both fields carry text after trimming.
func (d Draft) Valid() bool {
	return strings.TrimSpace(d.Author) != "" && strings.TrimSpace(d.Content) != ""
}

// EditTarget names the comment being edited. A board holds at most one.
type EditTarget struct {
	CommentID string
}

// Outcome describes what a submit did to the board.
type Outcome int

const (
	OutcomeRejected Outcome = iota // draft failed validation, nothing changed
	OutcomeCreated                 // new comment appended
	OutcomeUpdated                 // edit target rewritten in place
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	default:
		return "rejected"
	}
}
