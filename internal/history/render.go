package history

import (
	"fmt"
	"sort"
	"strings"
)

// Render produces the detailed section content for the full session list,
// newest first. Output is deterministic: the same sessions always render
// to the same bytes.
func Render(sessions []Session) string {
	ordered := make([]Session, len(sessions))
	copy(ordered, sessions)
	sortNewestFirst(ordered)

	var b strings.Builder
	for i, s := range ordered {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("### " + s.Date + "\n")
		fmt.Fprintf(&b, "- **Start Page:** %d\n", s.StartPage)
		fmt.Fprintf(&b, "- **End Page:** %d\n", s.EndPage)
		fmt.Fprintf(&b, "- **Pages Read:** %d\n", s.PagesRead)
		if s.Timestamp != "" {
			b.WriteString("- **Timestamp:** " + s.Timestamp + "\n")
		}
		if s.Notes != "" {
			b.WriteString("- **Notes:**\n")
			for _, line := range strings.Split(s.Notes, "\n") {
				b.WriteString("  " + line + "\n")
			}
		}
	}
	return b.String()
}

// sortNewestFirst orders sessions descending by date, then timestamp.
// The sort is stable so same-moment entries keep their list order.
func sortNewestFirst(sessions []Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date > sessions[j].Date
		}
		return sessions[i].Timestamp > sessions[j].Timestamp
	})
}
