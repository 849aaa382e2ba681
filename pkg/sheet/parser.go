// Package sheet parses the indentation-based sheet format and manages
// the in-memory sheet collection.
//
// A sheet is plain UTF-8 text: the first line is the display name, a
// 4-space (or one tab) indented line declares a header, and an 8-space
// indented line is an entry under the most recent header. Entries
// starting with '>' are shell commands; a trailing " #" introduces an
// optional description.
package sheet

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/devdeck/devdeck/pkg/models"
)

const (
	commandMarker     = ">"
	descriptionSep    = " #"
	spacesPerLevel    = 4
	titleWordLimit    = 3
	titleEllipsis     = "..."
	headerIndentLevel = 1
	noteIndentLevel   = 2
)

// Parse converts raw sheet text into an ordered list of headers. It
// never fails: lines that do not match the format are skipped, so
// malformed input degrades to fewer (or zero) headers rather than an
// error.
func Parse(text string) []*models.Header {
	headers := []*models.Header{}
	var current *models.Header
	now := time.Now()

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch indentLevel(line) {
		case headerIndentLevel:
			current = &models.Header{
				ID:    uuid.NewString(),
				Name:  strings.TrimSpace(line),
				Notes: []*models.Note{},
			}
			headers = append(headers, current)
		case noteIndentLevel:
			// An entry before any header has nowhere to go and is
			// dropped, matching the leniency contract of the format.
			if current == nil {
				continue
			}
			current.Notes = append(current.Notes, parseNote(strings.TrimSpace(line), now))
		}
	}

	return headers
}

// indentLevel computes the structural depth of a line: leading tabs
// count as four spaces, and the total is divided by four.
func indentLevel(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += spacesPerLevel
		default:
			return width / spacesPerLevel
		}
	}
	return width / spacesPerLevel
}

// parseNote classifies a trimmed entry line as a command or plain note
// and splits off the optional trailing description.
func parseNote(text string, now time.Time) *models.Note {
	kind := models.KindPlainNote
	if strings.HasPrefix(text, commandMarker) {
		kind = models.KindCommand
		text = strings.TrimLeft(strings.TrimPrefix(text, commandMarker), " \t")
	}

	content := text
	description := ""
	if idx := strings.Index(text, descriptionSep); idx >= 0 {
		content = strings.TrimSpace(text[:idx])
		description = strings.TrimSpace(text[idx+len(descriptionSep):])
	}

	return &models.Note{
		ID:          uuid.NewString(),
		Title:       deriveTitle(content),
		Content:     content,
		Kind:        kind,
		Description: description,
		Tags:        []string{},
		CreatedAt:   now,
	}
}

// deriveTitle shortens long content to its first three words.
func deriveTitle(content string) string {
	words := strings.Fields(content)
	if len(words) <= titleWordLimit {
		return content
	}
	return strings.Join(words[:titleWordLimit], " ") + titleEllipsis
}
