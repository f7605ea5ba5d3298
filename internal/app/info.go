package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/history"
)

func newInfoCmd() *cobra.Command {
	var sessions int

	cmd := &cobra.Command{
		Use:   "info <book>",
		Short: "Show metadata and recent sessions for a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := store.Load(args[0])
			if err != nil {
				return err
			}
			b := doc.Decode()

			header("Book: %s", displayTitle(b.Title, doc.Path))
			if b.Subtitle != "" {
				printField("subtitle", b.Subtitle)
			}
			if len(b.Authors) > 0 {
				printField("author", strings.Join(b.Authors, ", "))
			}
			if len(b.Categories) > 0 {
				printField("category", strings.Join(b.Categories, ", "))
			}
			if b.Publisher != "" {
				printField("publisher", b.Publisher)
			}
			if b.PublishDate != "" {
				printField("published", b.PublishDate)
			}
			if b.ISBN10 != "" {
				printField("isbn10", b.ISBN10)
			}
			if b.ISBN13 != "" {
				printField("isbn13", b.ISBN13)
			}
			printField("status", string(b.Status))
			if b.TotalPages > 0 {
				printField("progress", fmt.Sprintf("%d/%d pages", b.CurrentPage, b.TotalPages))
			} else {
				printField("progress", fmt.Sprintf("%d pages", b.CurrentPage))
			}
			if b.StartedAt != "" {
				printField("started", b.StartedAt)
			}
			if b.FinishedAt != "" {
				printField("finished", b.FinishedAt)
			}

			detail := history.ParseSection(doc.Body, cfg.EffectiveHeading())
			if len(detail) == 0 {
				return nil
			}
			fmt.Println()
			header("Sessions (%d total)", len(detail))
			shown := detail
			if len(shown) > sessions {
				shown = shown[:sessions]
			}
			for _, s := range shown {
				line := fmt.Sprintf("  %s  %3d → %3d  (%d pages)", s.Date, s.StartPage, s.EndPage, s.PagesRead)
				fmt.Println(line)
				if s.Notes != "" {
					for _, l := range strings.Split(s.Notes, "\n") {
						fmt.Printf("      %s\n", l)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&sessions, "sessions", 5, "How many recent sessions to show")
	return cmd
}
