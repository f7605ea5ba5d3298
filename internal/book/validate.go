package book

import "fmt"

// Warning is one correctable validation finding. Validation never blocks
// an operation; decoding tolerates bad values and this pass reports them.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return w.Field + ": " + w.Message
}

// Validate checks a decoded book for out-of-range or inconsistent values.
func Validate(b *Book) []Warning {
	var warnings []Warning

	if b.Title == "" {
		warnings = append(warnings, Warning{KeyTitle, "title is empty"})
	}
	if b.TotalPages < 0 {
		warnings = append(warnings, Warning{KeyTotal, fmt.Sprintf("total pages is negative (%d)", b.TotalPages)})
	}
	if b.CurrentPage < 0 {
		warnings = append(warnings, Warning{KeyReadPage, fmt.Sprintf("current page is negative (%d)", b.CurrentPage)})
	}
	if b.TotalPages > 0 && b.CurrentPage > b.TotalPages {
		warnings = append(warnings, Warning{KeyReadPage, fmt.Sprintf(
			"current page %d exceeds total pages %d", b.CurrentPage, b.TotalPages)})
	}
	if b.StartedAt != "" && b.FinishedAt != "" && b.FinishedAt < b.StartedAt {
		warnings = append(warnings, Warning{KeyFinished, fmt.Sprintf(
			"finish date %s is before start date %s", b.FinishedAt, b.StartedAt)})
	}
	if b.Status == StatusFinished && b.FinishedAt == "" {
		warnings = append(warnings, Warning{KeyFinished, "finished book has no finish date"})
	}
	if b.Status == StatusReading && b.StartedAt == "" {
		warnings = append(warnings, Warning{KeyStarted, "book in progress has no start date"})
	}

	for i, e := range b.Summary {
		if e.EndPage < e.StartPage {
			warnings = append(warnings, Warning{"reading_history_summary", fmt.Sprintf(
				"entry %d (%s): end page %d before start page %d", i, e.Date, e.EndPage, e.StartPage)})
		}
	}

	return warnings
}
