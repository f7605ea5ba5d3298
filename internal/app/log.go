package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/history"
	"github.com/minseon9/readtrack/internal/journal"
	"github.com/minseon9/readtrack/internal/vault"
)

func newLogCmd() *cobra.Command {
	var (
		endPage   int
		startPage int
		notes     string
	)

	cmd := &cobra.Command{
		Use:   "log <book>",
		Short: "Record a reading session for a book",
		Long: `Append one reading session to a book document.

The start page is inferred from the last recorded session (or the current
progress counter) unless --start is given. The detailed entry goes into
the body's reading-history section; a note-free mirror is appended to the
frontmatter summary. Both are written in one atomic document update.

Examples:
  readtrack log sicp --end 120
  readtrack log sicp --end 180 --notes "clever chapter on streams"
  readtrack log sicp --end 60 --start 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if endPage < 0 {
				return fmt.Errorf("--end must be non-negative")
			}
			if cmd.Flags().Changed("start") && endPage < startPage {
				return fmt.Errorf("--end (%d) is before --start (%d)", endPage, startPage)
			}

			doc, err := store.Load(args[0])
			if err != nil {
				return err
			}

			opts := vault.SessionOptions{
				Notes:   notes,
				Heading: cfg.EffectiveHeading(),
				Now:     time.Now(),
			}
			if cmd.Flags().Changed("start") {
				opts.StartPage = &startPage
			}

			b, sess := doc.RecordSession(endPage, opts)
			if err := store.Save(doc); err != nil {
				return err
			}

			appendJournal(doc, b.Title, sess)

			ok("Logged %d pages (%d → %d) for %s", sess.PagesRead, sess.StartPage, sess.EndPage, displayTitle(b.Title, doc.Path))
			if b.TotalPages > 0 {
				fmt.Printf("  progress: %d/%d pages, status %s\n", b.CurrentPage, b.TotalPages, b.Status)
			} else {
				fmt.Printf("  progress: %d pages, status %s\n", b.CurrentPage, b.Status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&endPage, "end", 0, "Page reached in this session (required)")
	cmd.Flags().IntVar(&startPage, "start", 0, "Page the session started on (default: inferred)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes for the detailed entry")
	cmd.MarkFlagRequired("end")

	return cmd
}

// appendJournal records the session in the vault-wide journal. Journal
// failures only warn: the document update already succeeded.
func appendJournal(doc *vault.Document, title string, sess history.Session) {
	if cfg.Journal.Disabled || cfg.Journal.Path == "" {
		return
	}
	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		warn("journal unavailable: %v", err)
		return
	}
	err = j.Append(journal.Entry{
		Book:      doc.Path,
		Title:     title,
		Date:      sess.Date,
		StartPage: sess.StartPage,
		EndPage:   sess.EndPage,
		PagesRead: sess.PagesRead,
	})
	if err != nil {
		warn("could not update journal: %v", err)
	}
}

func displayTitle(title, path string) string {
	if title != "" {
		return title
	}
	return path
}
