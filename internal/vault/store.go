package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minseon9/readtrack/internal/book"
)

// Store reads and writes book documents under one vault directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the vault root.
func (s *Store) Dir() string {
	return s.dir
}

// Resolve turns a book name or relative path into an absolute document
// path, appending the markdown extension when missing.
func (s *Store) Resolve(name string) string {
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// Load reads and parses one document.
func (s *Store) Load(name string) (*Document, error) {
	path := s.Resolve(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return ParseDocument(path, string(data)), nil
}

// Save writes the document back as one atomic replacement: the new text
// lands in a temp file in the same directory and is renamed over the
// original, so a crash can never leave a half-written book record.
func (s *Store) Save(doc *Document) error {
	dir := filepath.Dir(doc.Path)
	tmp, err := os.CreateTemp(dir, ".readtrack-*")
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(doc.Text()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := os.Rename(tmpPath, doc.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// List walks the vault and returns the paths of all markdown documents.
func (s *Store) List() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Keep walking past unreadable entries.
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".md" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking vault: %w", err)
	}
	return paths, nil
}

// LoadAll decodes every document in the vault. A document that cannot be
// read is skipped and counted; it never fails the batch.
func (s *Store) LoadAll() (books []*book.Book, docs []*Document, skipped int) {
	paths, err := s.List()
	if err != nil {
		return nil, nil, 0
	}
	for _, path := range paths {
		doc, err := s.Load(path)
		if err != nil {
			skipped++
			continue
		}
		docs = append(docs, doc)
		books = append(books, doc.Decode())
	}
	return books, docs, skipped
}
