package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/book"
)

type listRow struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Authors  string `json:"authors,omitempty"`
	Status   string `json:"status"`
	Current  int    `json:"current_page"`
	Total    int    `json:"total_pages,omitempty"`
	Sessions int    `json:"sessions"`
}

func newListCmd() *cobra.Command {
	var (
		statusFilter string
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all books in the vault",
		RunE: func(cmd *cobra.Command, args []string) error {
			books, docs, skipped := store.LoadAll()
			if skipped > 0 {
				warn("%d document(s) could not be read and were skipped", skipped)
			}

			var rows []listRow
			for i, b := range books {
				if statusFilter != "" && string(b.Status) != statusFilter {
					continue
				}
				rel, err := filepath.Rel(store.Dir(), docs[i].Path)
				if err != nil {
					rel = docs[i].Path
				}
				rows = append(rows, listRow{
					Path:     rel,
					Title:    displayTitle(b.Title, rel),
					Authors:  strings.Join(b.Authors, ", "),
					Status:   string(b.Status),
					Current:  b.CurrentPage,
					Total:    b.TotalPages,
					Sessions: len(b.Summary),
				})
			}
			sort.Slice(rows, func(i, j int) bool { return rows[i].Title < rows[j].Title })

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			if len(rows) == 0 {
				fmt.Println("No books found.")
				return nil
			}
			for _, r := range rows {
				fmt.Printf("  %s %-40s %s\n", statusGlyph(book.Status(r.Status)), truncate(r.Title, 40), progressLabel(r))
			}
			fmt.Printf("\n%d books\n", len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "Only show books with this status")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

func statusGlyph(s book.Status) string {
	switch s {
	case book.StatusFinished:
		return color.GreenString("✓")
	case book.StatusReading:
		return color.YellowString("▶")
	default:
		return color.HiBlackString("·")
	}
}

func progressLabel(r listRow) string {
	if r.Total > 0 {
		return color.HiBlackString("%d/%d pages", r.Current, r.Total)
	}
	if r.Current > 0 {
		return color.HiBlackString("%d pages", r.Current)
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
