// Package journal keeps a vault-wide JSONL log of recorded reading
// sessions, one line per append. It is a convenience index for "what did
// I read lately" queries; the documents themselves stay the source of
// truth.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry records one completed session append.
type Entry struct {
	Book      string    `json:"book"` // document path
	Title     string    `json:"title,omitempty"`
	Date      string    `json:"date"`
	StartPage int       `json:"start_page"`
	EndPage   int       `json:"end_page"`
	PagesRead int       `json:"pages_read"`
	LoggedAt  time.Time `json:"logged_at"`
}

// Journal is an append-only JSONL log file.
type Journal struct {
	path string
}

// DefaultPath returns the default journal location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "readtrack", "journal.jsonl")
}

// Open opens (or creates) the journal at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, err
	}
	return &Journal{path: path}, nil
}

// Append adds an entry to the journal.
func (j *Journal) Append(e Entry) error {
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now().UTC()
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f, string(data))
	return err
}

// Entries returns all journal entries in append order. Unreadable lines
// are skipped.
func (j *Journal) Entries() ([]Entry, error) {
	f, err := os.Open(j.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, sc.Err()
}

// Tail returns the last n entries, oldest first.
func (j *Journal) Tail(n int) ([]Entry, error) {
	entries, err := j.Entries()
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
