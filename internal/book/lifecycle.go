package book

import (
	"time"

	"github.com/minseon9/readtrack/internal/history"
)

// SetStatus transitions the reading state and stamps lifecycle timestamps.
// Moving to reading records the start time once; moving to finished
// records the finish time once and raises the progress counter to the
// known total. Moving back to unread clears nothing: history is
// append-only.
func (b *Book) SetStatus(s Status, now time.Time) {
	if b.Status == s {
		return
	}
	b.Status = s
	switch s {
	case StatusReading:
		if b.StartedAt == "" {
			b.StartedAt = now.Format(history.TimestampLayout)
		}
	case StatusFinished:
		if b.FinishedAt == "" {
			b.FinishedAt = now.Format(history.TimestampLayout)
		}
		if b.TotalPages > 0 && b.CurrentPage < b.TotalPages {
			b.CurrentPage = b.TotalPages
		}
	}
}

// Touch refreshes the mutation timestamp, stamping the creation time on
// first use. CreatedAt is immutable once set.
func (b *Book) Touch(now time.Time) {
	if b.CreatedAt == "" {
		b.CreatedAt = now.Format(history.TimestampLayout)
	}
	b.UpdatedAt = now.Format(history.TimestampLayout)
}
