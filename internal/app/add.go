package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/book"
	"github.com/minseon9/readtrack/internal/vault"
)

func newAddCmd() *cobra.Command {
	var (
		title    string
		author   string
		category string
		total    int
		isbn     string
	)

	cmd := &cobra.Command{
		Use:   "add <book>",
		Short: "Create a new book document in the vault",
		Long: `Create a markdown book record under the vault directory. The document
gets a frontmatter header with the configured default status and an empty
body ready for notes.

Examples:
  readtrack add sicp --title "SICP" --author "Abelson & Sussman" --total 657
  readtrack add ddia --title "Designing Data-Intensive Applications" --category engineering`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := store.Resolve(args[0])
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("document already exists: %s", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("creating document directory: %w", err)
			}

			b := &book.Book{
				Title:      title,
				TotalPages: total,
				Status:     book.ParseStatus(cfg.EffectiveDefaultStatus()),
			}
			if title == "" {
				b.Title = args[0]
			}
			if author != "" {
				b.Authors = strings.Split(author, ",")
				for i := range b.Authors {
					b.Authors[i] = strings.TrimSpace(b.Authors[i])
				}
			}
			if category != "" {
				b.Categories = []string{category}
			}
			if isbn != "" {
				b.ISBN10, b.ISBN13 = book.SplitISBN(isbn)
			}
			b.Touch(time.Now())

			doc := &vault.Document{Path: path, Meta: book.ToFrontmatter(b), Body: "\n"}
			if err := store.Save(doc); err != nil {
				return err
			}

			ok("Created %s (%s)", b.Title, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title (default: the document name)")
	cmd.Flags().StringVar(&author, "author", "", "Comma-separated author names")
	cmd.Flags().StringVar(&category, "category", "", "Category label")
	cmd.Flags().IntVar(&total, "total", 0, "Total page count (0 if unknown)")
	cmd.Flags().StringVar(&isbn, "isbn", "", "ISBN-10 and/or ISBN-13, whitespace-separated")

	return cmd
}
