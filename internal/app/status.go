package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/book"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <book> <unread|reading|finished>",
		Short: "Change the reading status of a book",
		Long: `Set a book's reading status, stamping lifecycle timestamps.

Moving to reading records the start time once. Moving to finished records
the finish time once and raises the progress counter to the known total.
Moving back to unread clears nothing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := book.Status(args[1])
			switch target {
			case book.StatusUnread, book.StatusReading, book.StatusFinished:
			default:
				return fmt.Errorf("invalid status %q (use unread, reading, or finished)", args[1])
			}

			doc, err := store.Load(args[0])
			if err != nil {
				return err
			}
			b := doc.SetStatus(target, time.Now())
			if err := store.Save(doc); err != nil {
				return err
			}
			ok("%s is now %s", displayTitle(b.Title, doc.Path), b.Status)
			return nil
		},
	}
	return cmd
}
