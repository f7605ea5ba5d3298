package book

import (
	"strings"

	"github.com/minseon9/readtrack/internal/frontmatter"
	"github.com/minseon9/readtrack/internal/history"
)

// Frontmatter field names. These are the wire format of the document
// header and must not change without a migration.
const (
	KeyTitle       = "title"
	KeySubtitle    = "subtitle"
	KeyAuthor      = "author"
	KeyCategory    = "category"
	KeyPublisher   = "publisher"
	KeyPublishDate = "publish_date"
	KeyTotal       = "total"
	KeyISBN        = "isbn"
	KeyCoverURL    = "cover_url"
	KeyStatus      = "status"
	KeyReadPage    = "read_page"
	KeyStarted     = "read_started"
	KeyFinished    = "read_finished"
	KeyCreated     = "created_at"
	KeyUpdated     = "updated_at"
)

// FromFrontmatter decodes a book from its header mapping. It never fails:
// missing or invalid fields degrade to zero values, the status defaults to
// unread, and the progress counter is reconciled against the summary
// ledger (the larger of the two wins, so a stale explicit counter can only
// be raised, never lowered).
func FromFrontmatter(m *frontmatter.Map) *Book {
	b := &Book{
		Title:       m.GetString(KeyTitle),
		Subtitle:    m.GetString(KeySubtitle),
		Publisher:   m.GetString(KeyPublisher),
		PublishDate: m.GetString(KeyPublishDate),
		CoverURL:    m.GetString(KeyCoverURL),
		Status:      ParseStatus(m.GetString(KeyStatus)),
		StartedAt:   m.GetString(KeyStarted),
		FinishedAt:  m.GetString(KeyFinished),
		CreatedAt:   m.GetString(KeyCreated),
		UpdatedAt:   m.GetString(KeyUpdated),
	}

	if v, ok := m.Get(KeyAuthor); ok {
		b.Authors = v.AsStringList()
	}
	if v, ok := m.Get(KeyCategory); ok {
		b.Categories = v.AsStringList()
	}
	if n := intField(m, KeyTotal); n > 0 {
		b.TotalPages = n
	}

	b.ISBN10, b.ISBN13 = SplitISBN(m.GetString(KeyISBN))

	if v, ok := m.Get(history.SummaryKey); ok {
		b.Summary = history.SummaryFromValue(v)
	}

	explicit := intField(m, KeyReadPage)
	ledger := history.PagesTotal(b.Summary)
	if ledger > explicit {
		b.CurrentPage = ledger
	} else {
		b.CurrentPage = explicit
	}

	return b
}

// ToFrontmatter encodes the book as a fresh header mapping.
func ToFrontmatter(b *Book) *frontmatter.Map {
	m := frontmatter.NewMap()
	Apply(b, m)
	return m
}

// Apply writes the book's known fields into an existing mapping, keeping
// unknown fields and the original key positions untouched. Optional fields
// that became empty are removed; status, progress, and all four lifecycle
// timestamps are always present so the header schema stays stable.
func Apply(b *Book, m *frontmatter.Map) {
	m.Set(KeyTitle, frontmatter.String(b.Title))
	setOptional(m, KeySubtitle, b.Subtitle)
	setStringList(m, KeyAuthor, b.Authors)
	setStringList(m, KeyCategory, b.Categories)
	setOptional(m, KeyPublisher, b.Publisher)
	setOptional(m, KeyPublishDate, b.PublishDate)

	if b.TotalPages > 0 {
		m.Set(KeyTotal, frontmatter.Number(float64(b.TotalPages)))
	} else {
		m.Delete(KeyTotal)
	}

	setOptional(m, KeyISBN, joinISBN(b.ISBN10, b.ISBN13))
	setOptional(m, KeyCoverURL, b.CoverURL)

	m.Set(KeyStatus, frontmatter.String(string(b.Status)))
	m.Set(KeyReadPage, frontmatter.Number(float64(b.CurrentPage)))
	m.Set(KeyStarted, frontmatter.String(b.StartedAt))
	m.Set(KeyFinished, frontmatter.String(b.FinishedAt))
	m.Set(KeyCreated, frontmatter.String(b.CreatedAt))
	m.Set(KeyUpdated, frontmatter.String(b.UpdatedAt))

	if len(b.Summary) > 0 {
		m.Set(history.SummaryKey, history.SummaryValue(b.Summary))
	}
}

func setOptional(m *frontmatter.Map, key, value string) {
	if value == "" {
		m.Delete(key)
		return
	}
	m.Set(key, frontmatter.String(value))
}

func setStringList(m *frontmatter.Map, key string, items []string) {
	if len(items) == 0 {
		m.Delete(key)
		return
	}
	vals := make([]frontmatter.Value, 0, len(items))
	for _, s := range items {
		vals = append(vals, frontmatter.String(s))
	}
	m.Set(key, frontmatter.ListOf(vals...))
}

// SplitISBN classifies the whitespace-separated tokens of the combined
// identifier field by length. The first 10-character token becomes the
// ISBN-10, the first 13-character token the ISBN-13.
func SplitISBN(combined string) (isbn10, isbn13 string) {
	for _, tok := range strings.Fields(combined) {
		switch len(tok) {
		case 10:
			if isbn10 == "" {
				isbn10 = tok
			}
		case 13:
			if isbn13 == "" {
				isbn13 = tok
			}
		}
	}
	return isbn10, isbn13
}

func joinISBN(isbn10, isbn13 string) string {
	switch {
	case isbn10 != "" && isbn13 != "":
		return isbn10 + " " + isbn13
	case isbn10 != "":
		return isbn10
	default:
		return isbn13
	}
}

func intField(m *frontmatter.Map, key string) int {
	v, ok := m.Get(key)
	if !ok {
		return 0
	}
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return 0
	}
	return n
}
