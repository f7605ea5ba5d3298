// Package stats derives library-wide reading analytics from decoded books
// and their summary ledgers.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/minseon9/readtrack/internal/book"
	"github.com/minseon9/readtrack/internal/history"
)

// Bucket is one time grouping (a year or a year-month) of finished books.
type Bucket struct {
	Count int `json:"count"`
	Pages int `json:"pages"`

	// Change and ChangePercent compare against the immediately preceding
	// bucket in sorted key order.
	Change        int `json:"change"`
	ChangePercent int `json:"change_percent"`
}

// Snapshot is the derived analytics for one pass over the library.
type Snapshot struct {
	Books    int `json:"books"`
	Unread   int `json:"unread"`
	Reading  int `json:"reading"`
	Finished int `json:"finished"`

	TotalPages   int `json:"total_pages"`
	CurrentPages int `json:"current_pages"`

	Categories map[string]int `json:"categories"`

	Yearly  map[string]Bucket `json:"yearly"`
	Monthly map[string]Bucket `json:"monthly"`

	// AvgDaysToFinish is the mean number of distinct calendar dates
	// touched per finished book (start date plus every session date).
	AvgDaysToFinish float64 `json:"avg_days_to_finish"`

	// ReadingDays is the distinct reading-day count across the whole
	// library, regardless of status.
	ReadingDays int `json:"reading_days"`
}

// Aggregate computes a snapshot over the given books. A nil entry (a
// document that failed to decode upstream) is skipped; an empty input
// produces a fully zero-valued snapshot.
func Aggregate(books []*book.Book) Snapshot {
	snap := Snapshot{
		Categories: make(map[string]int),
		Yearly:     make(map[string]Bucket),
		Monthly:    make(map[string]Bucket),
	}

	allDays := make(map[string]struct{})
	finishedDayTotal := 0
	finishedWithDays := 0

	for _, b := range books {
		if b == nil {
			continue
		}
		snap.Books++

		switch b.Status {
		case book.StatusReading:
			snap.Reading++
		case book.StatusFinished:
			snap.Finished++
		default:
			snap.Unread++
		}

		snap.TotalPages += b.TotalPages
		snap.CurrentPages += b.CurrentPage

		for _, c := range b.Categories {
			snap.Categories[c]++
		}

		days := touchedDays(b)
		for d := range days {
			allDays[d] = struct{}{}
		}

		if b.Status == book.StatusFinished {
			if len(days) > 0 {
				finishedDayTotal += len(days)
				finishedWithDays++
			}
			if date, ok := datePrefix(b.FinishedAt); ok {
				bumpBucket(snap.Yearly, date[:4], b.TotalPages)
				bumpBucket(snap.Monthly, date[:7], b.TotalPages)
			}
		}
	}

	fillTrends(snap.Yearly)
	fillTrends(snap.Monthly)

	snap.ReadingDays = len(allDays)
	if finishedWithDays > 0 {
		snap.AvgDaysToFinish = float64(finishedDayTotal) / float64(finishedWithDays)
	}

	return snap
}

// touchedDays collects the distinct calendar dates a book was read on:
// the start date plus every summary entry date.
func touchedDays(b *book.Book) map[string]struct{} {
	days := make(map[string]struct{})
	if d, ok := datePrefix(b.StartedAt); ok {
		days[d] = struct{}{}
	}
	for _, e := range b.Summary {
		if d, ok := datePrefix(e.Date); ok {
			days[d] = struct{}{}
		}
	}
	return days
}

// datePrefix extracts and validates the YYYY-MM-DD prefix of an opaque
// timestamp string.
func datePrefix(s string) (string, bool) {
	if len(s) < len(history.DateLayout) {
		return "", false
	}
	d := s[:len(history.DateLayout)]
	if _, err := time.Parse(history.DateLayout, d); err != nil {
		return "", false
	}
	return d, true
}

func bumpBucket(buckets map[string]Bucket, key string, pages int) {
	b := buckets[key]
	b.Count++
	b.Pages += pages
	buckets[key] = b
}

// fillTrends computes each bucket's delta against the preceding bucket in
// sorted key order. A bucket with no predecessor compares against zero.
func fillTrends(buckets map[string]Bucket) {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	prev := 0
	for _, k := range keys {
		b := buckets[k]
		b.Change = b.Count - prev
		switch {
		case prev == 0 && b.Count > 0:
			b.ChangePercent = 100
		case prev == 0:
			b.ChangePercent = 0
		default:
			b.ChangePercent = int(math.Round(float64(b.Change) / float64(prev) * 100))
		}
		buckets[k] = b
		prev = b.Count
	}
}
