package app

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/stats"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

func newStatsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show library-wide reading statistics",
		Long: `Aggregate reading statistics across the whole vault: status counts,
page totals, category histogram, yearly and monthly finishing trends, and
distinct reading-day counts.

A document that cannot be read is skipped; it never blocks the snapshot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, _, skipped := store.LoadAll()
			if skipped > 0 {
				warn("%d document(s) could not be read and were skipped", skipped)
			}

			snap := stats.Aggregate(books)

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}

			printSnapshot(snap)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printSnapshot(snap stats.Snapshot) {
	summary := fmt.Sprintf(
		"%d books   %s %d unread   %s %d reading   %s %d finished\n%d pages read of %d tracked   %d distinct reading days",
		snap.Books,
		color.HiBlackString("·"), snap.Unread,
		color.YellowString("▶"), snap.Reading,
		color.GreenString("✓"), snap.Finished,
		snap.CurrentPages, snap.TotalPages,
		snap.ReadingDays,
	)
	fmt.Println(cardStyle.Render(summary))

	if snap.AvgDaysToFinish > 0 {
		fmt.Printf("\nAverage reading days per finished book: %.1f\n", snap.AvgDaysToFinish)
	}

	if len(snap.Categories) > 0 {
		fmt.Println()
		header("Categories")
		for _, e := range sortedCounts(snap.Categories) {
			fmt.Printf("  %-24s %s\n", e.name, color.HiBlackString("(%d)", e.count))
		}
	}

	printTrend("By year", snap.Yearly)
	printTrend("By month", snap.Monthly)
}

func printTrend(title string, buckets map[string]stats.Bucket) {
	if len(buckets) == 0 {
		return
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println()
	header(title)
	for _, k := range keys {
		b := buckets[k]
		delta := ""
		if b.Change != 0 {
			delta = color.HiBlackString("%+d (%+d%%)", b.Change, b.ChangePercent)
		}
		fmt.Printf("  %-8s %3d finished  %6d pages  %s\n", k, b.Count, b.Pages, delta)
	}
}

type countEntry struct {
	name  string
	count int
}

// sortedCounts orders a histogram by descending count, then name.
func sortedCounts(m map[string]int) []countEntry {
	entries := make([]countEntry, 0, len(m))
	for name, count := range m {
		entries = append(entries, countEntry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	return entries
}
