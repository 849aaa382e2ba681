package models

import "time"

// NoteKind represents the kind of sheet entry
type NoteKind string

const (
	KindCommand   NoteKind = "command"
	KindPlainNote NoteKind = "note"
)

// Note represents a single entry under a sheet header: either a shell
// command or a free-text note, with an optional trailing description.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Kind        NoteKind  `json:"kind"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	SheetName   string    `json:"sheet_name,omitempty"`
	HeaderName  string    `json:"header_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Header is a named grouping of notes within one sheet. Order of the
// Notes slice equals source order.
type Header struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Notes []*Note `json:"notes"`
}

// Sheet is a named text document holding zero or more headers.
type Sheet struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	RawText string    `json:"raw_text,omitempty"`
	Headers []*Header `json:"headers"`
}

// IsCommand reports whether the note holds executable shell text.
func (n *Note) IsCommand() bool {
	return n.Kind == KindCommand
}
