package app

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/minseon9/readtrack/internal/book"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every book record for inconsistencies",
		Long: `Scan the vault and report records whose metadata looks wrong: a page
counter past the total, a finished book with no finish date, a session
that ends before it starts. Validation never modifies a document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := store.List()
			if err != nil {
				return err
			}
			sort.Strings(paths)

			var flagged, unreadable int
			for _, path := range paths {
				doc, err := store.Load(path)
				if err != nil {
					warn("%s: %v", path, err)
					unreadable++
					continue
				}
				b := doc.Decode()
				warnings := book.Validate(b)
				if len(warnings) == 0 {
					continue
				}
				flagged++
				fmt.Println(color.YellowString(displayTitle(b.Title, path)))
				for _, w := range warnings {
					fmt.Printf("  %-14s %s\n", color.HiBlackString(w.Field+":"), w.Message)
				}
			}

			switch {
			case flagged == 0 && unreadable == 0:
				ok("%d record(s) checked, no problems found", len(paths))
			case flagged == 0:
				warn("%d record(s) could not be read", unreadable)
			default:
				fmt.Println()
				warn("%d of %d record(s) have warnings", flagged, len(paths))
			}
			return nil
		},
	}
}
