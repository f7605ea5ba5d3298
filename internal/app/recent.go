package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/journal"
)

func newRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recently logged reading sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Journal.Path
			if path == "" {
				path = journal.DefaultPath()
			}
			jnl, err := journal.Open(path)
			if err != nil {
				return fmt.Errorf("opening journal: %w", err)
			}

			entries, err := jnl.Tail(limit)
			if err != nil {
				return fmt.Errorf("reading journal: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("No sessions logged yet.")
				return nil
			}

			for _, e := range entries {
				fmt.Printf("%s  %-32s p.%d → %d  %s\n",
					color.HiBlackString(e.Date),
					truncate(displayTitle(e.Title, e.Book), 32),
					e.StartPage, e.EndPage,
					color.GreenString("+%d", e.PagesRead),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of sessions to show")
	return cmd
}
