package vault_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/minseon9/readtrack/internal/book"
	"github.com/minseon9/readtrack/internal/vault"
)

var sampleDoc = `---
title: "Test Book"
status: reading
total: 400
read_page: 150
read_started: "2026-01-28 10:00:00"
reading_history_summary:
  - date: "2026-01-28"
    startPage: 0
    endPage: 150
    pagesRead: 150
    timestamp: "2026-01-28 15:30:00"
---
My notes on this book.

## Reading History

### 2026-01-28
- **Start Page:** 0
- **End Page:** 150
- **Pages Read:** 150
- **Timestamp:** 2026-01-28 15:30:00
`

var testNow = time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC)

func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DecodesBook(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "test-book.md", sampleDoc)

	store := vault.NewStore(dir)
	doc, err := store.Load("test-book")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b := doc.Decode()
	if b.Title != "Test Book" || b.Status != book.StatusReading {
		t.Errorf("book = %+v", b)
	}
	if b.CurrentPage != 150 || b.TotalPages != 400 {
		t.Errorf("pages = %d/%d", b.CurrentPage, b.TotalPages)
	}
	if len(b.Summary) != 1 {
		t.Errorf("summary = %+v", b.Summary)
	}
}

func TestLoad_Missing(t *testing.T) {
	store := vault.NewStore(t.TempDir())
	if _, err := store.Load("nope"); err == nil {
		t.Error("expected error for missing document")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.md", sampleDoc)
	store := vault.NewStore(dir)

	doc, err := store.Load("b")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	doc2, err := store.Load("b")
	if err != nil {
		t.Fatal(err)
	}
	if doc2.Body != doc.Body {
		t.Errorf("body changed on save round-trip:\n%q\nvs\n%q", doc2.Body, doc.Body)
	}
	b := doc2.Decode()
	if b.Title != "Test Book" || b.CurrentPage != 150 {
		t.Errorf("book after round-trip = %+v", b)
	}
}

func TestRecordSession_FullUpdate(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.md", sampleDoc)
	store := vault.NewStore(dir)
	doc, _ := store.Load("b")

	b, sess := doc.RecordSession(220, vault.SessionOptions{Notes: "good chapter", Now: testNow})

	if sess.StartPage != 150 || sess.PagesRead != 70 {
		t.Errorf("session = %+v", sess)
	}
	if b.CurrentPage != 220 {
		t.Errorf("CurrentPage = %d", b.CurrentPage)
	}
	if len(b.Summary) != 2 {
		t.Errorf("summary = %+v", b.Summary)
	}
	if b.UpdatedAt != "2026-02-01 20:00:00" {
		t.Errorf("UpdatedAt = %q", b.UpdatedAt)
	}

	// Header and body were both rewritten before any persistence.
	if err := store.Save(doc); err != nil {
		t.Fatal(err)
	}
	doc2, _ := store.Load("b")
	b2 := doc2.Decode()
	if b2.CurrentPage != 220 || len(b2.Summary) != 2 {
		t.Errorf("persisted book = %+v", b2)
	}
	if !strings.Contains(doc2.Body, "### 2026-02-01") {
		t.Errorf("body missing new entry:\n%s", doc2.Body)
	}
	if !strings.Contains(doc2.Body, "good chapter") {
		t.Errorf("notes missing from body")
	}
	if !strings.HasPrefix(doc2.Body, "My notes on this book.") {
		t.Errorf("body prefix altered: %q", doc2.Body)
	}
}

func TestRecordSession_UnreadBecomesReading(t *testing.T) {
	doc := vault.ParseDocument("x.md", "---\ntitle: Fresh\nstatus: unread\n---\n")
	b, _ := doc.RecordSession(10, vault.SessionOptions{Now: testNow})
	if b.Status != book.StatusReading {
		t.Errorf("status = %q", b.Status)
	}
	if b.StartedAt != "2026-02-01 20:00:00" {
		t.Errorf("StartedAt = %q", b.StartedAt)
	}
}

func TestRecordSession_ReachingTotalFinishes(t *testing.T) {
	doc := vault.ParseDocument("x.md", "---\ntitle: Short\nstatus: reading\ntotal: 100\nread_page: 80\n---\n")
	b, _ := doc.RecordSession(100, vault.SessionOptions{Now: testNow})
	if b.Status != book.StatusFinished {
		t.Errorf("status = %q", b.Status)
	}
	if b.FinishedAt == "" {
		t.Error("FinishedAt not stamped")
	}
}

func TestSetStatus_Transitions(t *testing.T) {
	doc := vault.ParseDocument("x.md", "---\ntitle: T\nstatus: unread\ntotal: 200\n---\n")
	b := doc.SetStatus(book.StatusFinished, testNow)
	if b.Status != book.StatusFinished {
		t.Errorf("status = %q", b.Status)
	}
	if b.CurrentPage != 200 {
		t.Errorf("CurrentPage = %d, want raised to total", b.CurrentPage)
	}
	if b.FinishedAt == "" || b.UpdatedAt == "" || b.CreatedAt == "" {
		t.Errorf("timestamps not stamped: %+v", b)
	}
}

func TestList_WalksNestedAndSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", sampleDoc)
	writeDoc(t, dir, "shelf/b.md", sampleDoc)
	writeDoc(t, dir, "shelf/notes.txt", "not a book")
	writeDoc(t, dir, ".trash/c.md", sampleDoc)

	store := vault.NewStore(dir)
	paths, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Errorf("paths = %v", paths)
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "a.md", sampleDoc)
	writeDoc(t, dir, "b.md", "no frontmatter, just text\n")

	store := vault.NewStore(dir)
	books, docs, skipped := store.LoadAll()
	if skipped != 0 {
		t.Errorf("skipped = %d", skipped)
	}
	if len(books) != 2 || len(docs) != 2 {
		t.Fatalf("books = %d, docs = %d", len(books), len(docs))
	}
	// The bare document still decodes, as an empty unread book.
	var bare *book.Book
	for _, b := range books {
		if b.Title == "" {
			bare = b
		}
	}
	if bare == nil || bare.Status != book.StatusUnread {
		t.Errorf("bare book = %+v", bare)
	}
}
