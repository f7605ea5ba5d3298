// Package vault owns document I/O for a directory tree of markdown book
// records. All text transformation is delegated to the frontmatter, book,
// and history packages; this layer only reads, decodes, and atomically
// writes whole documents.
package vault

import (
	"time"

	"github.com/minseon9/readtrack/internal/book"
	"github.com/minseon9/readtrack/internal/frontmatter"
	"github.com/minseon9/readtrack/internal/history"
)

// Document is one book record: the parsed header plus the raw body.
type Document struct {
	Path string
	Meta *frontmatter.Map
	Body string
}

// ParseDocument splits raw document text into header and body.
func ParseDocument(path, text string) *Document {
	meta, body := frontmatter.Parse(text)
	return &Document{Path: path, Meta: meta, Body: body}
}

// Text renders the document back to its on-disk form.
func (d *Document) Text() string {
	return frontmatter.Serialize(d.Meta) + d.Body
}

// Decode maps the document header to a book entity.
func (d *Document) Decode() *book.Book {
	return book.FromFrontmatter(d.Meta)
}

// SessionOptions carries the caller-supplied parts of one progress update.
type SessionOptions struct {
	StartPage *int
	Notes     string
	Heading   string
	Now       time.Time
}

// RecordSession appends a reading session to the document, updating body,
// summary mirror, progress counter, and lifecycle fields in one in-memory
// transaction. The caller persists the result with Store.Save; until then
// nothing on disk changes.
func (d *Document) RecordSession(endPage int, opts SessionOptions) (*book.Book, history.Session) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	b := d.Decode()

	newBody, newSummary, sess := history.Record(d.Body, b.Summary, endPage, history.RecordOptions{
		StartPage:   opts.StartPage,
		Notes:       opts.Notes,
		CurrentPage: b.CurrentPage,
		Heading:     opts.Heading,
		Now:         now,
	})

	d.Body = newBody
	b.Summary = newSummary
	if sess.EndPage > b.CurrentPage {
		b.CurrentPage = sess.EndPage
	}

	if b.Status == book.StatusUnread {
		b.SetStatus(book.StatusReading, now)
	}
	if b.TotalPages > 0 && b.CurrentPage >= b.TotalPages {
		b.SetStatus(book.StatusFinished, now)
	}
	b.Touch(now)

	book.Apply(b, d.Meta)
	return b, sess
}

// SetStatus applies a status change to the document and re-encodes the
// header.
func (d *Document) SetStatus(s book.Status, now time.Time) *book.Book {
	if now.IsZero() {
		now = time.Now()
	}
	b := d.Decode()
	b.SetStatus(s, now)
	b.Touch(now)
	book.Apply(b, d.Meta)
	return b
}
