// Package book defines the book entity and its mapping to and from the
// document frontmatter header.
package book

import (
	"github.com/minseon9/readtrack/internal/history"
)

// Status is the reading state of a book.
type Status string

const (
	StatusUnread   Status = "unread"
	StatusReading  Status = "reading"
	StatusFinished Status = "finished"
)

// ParseStatus maps arbitrary input to a valid status. Anything unknown
// degrades to unread.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusReading:
		return StatusReading
	case StatusFinished:
		return StatusFinished
	default:
		return StatusUnread
	}
}

// Book is one tracked book, decoded from a single vault document.
type Book struct {
	Title       string
	Subtitle    string
	Authors     []string
	Categories  []string
	Publisher   string
	PublishDate string

	// TotalPages is 0 when unknown.
	TotalPages int

	ISBN10 string
	ISBN13 string

	CoverURL string

	Status      Status
	CurrentPage int

	// Opaque timestamps. The core never interprets them beyond the
	// date prefix used by statistics.
	StartedAt  string
	FinishedAt string
	CreatedAt  string
	UpdatedAt  string

	// Summary mirrors the detailed body log, one entry per session.
	Summary []history.SummaryEntry
}
