package stats_test

import (
	"testing"

	"github.com/minseon9/readtrack/internal/book"
	"github.com/minseon9/readtrack/internal/history"
	"github.com/minseon9/readtrack/internal/stats"
)

func finished(title, finishedAt string, pages int) *book.Book {
	return &book.Book{
		Title:      title,
		Status:     book.StatusFinished,
		TotalPages: pages,
		FinishedAt: finishedAt,
	}
}

func TestAggregate_Empty(t *testing.T) {
	snap := stats.Aggregate(nil)
	if snap.Books != 0 || snap.Unread != 0 || snap.Reading != 0 || snap.Finished != 0 {
		t.Errorf("counts not zero: %+v", snap)
	}
	if snap.TotalPages != 0 || snap.CurrentPages != 0 {
		t.Errorf("page sums not zero: %+v", snap)
	}
	if len(snap.Yearly) != 0 || len(snap.Monthly) != 0 {
		t.Errorf("unexpected buckets: %+v", snap)
	}
	if snap.AvgDaysToFinish != 0 || snap.ReadingDays != 0 {
		t.Errorf("day stats not zero: %+v", snap)
	}
}

func TestAggregate_StatusCountsAndSums(t *testing.T) {
	books := []*book.Book{
		{Title: "a", Status: book.StatusUnread, TotalPages: 100},
		{Title: "b", Status: book.StatusReading, TotalPages: 200, CurrentPage: 50},
		finished("c", "2025-03-01 10:00:00", 300),
	}
	snap := stats.Aggregate(books)
	if snap.Books != 3 || snap.Unread != 1 || snap.Reading != 1 || snap.Finished != 1 {
		t.Errorf("counts = %+v", snap)
	}
	if snap.TotalPages != 600 {
		t.Errorf("TotalPages = %d", snap.TotalPages)
	}
	if snap.CurrentPages != 50 {
		t.Errorf("CurrentPages = %d", snap.CurrentPages)
	}
}

func TestAggregate_SkipsNilBooks(t *testing.T) {
	snap := stats.Aggregate([]*book.Book{nil, {Title: "x", Status: book.StatusUnread}, nil})
	if snap.Books != 1 {
		t.Errorf("Books = %d, want 1", snap.Books)
	}
}

func TestAggregate_CategoryHistogram(t *testing.T) {
	books := []*book.Book{
		{Title: "a", Status: book.StatusUnread, Categories: []string{"sf", "classics"}},
		{Title: "b", Status: book.StatusUnread, Categories: []string{"sf"}},
		{Title: "c", Status: book.StatusUnread, Categories: []string{"sf", "sf"}},
	}
	snap := stats.Aggregate(books)
	if snap.Categories["sf"] != 4 {
		t.Errorf("sf = %d, want 4 (duplicates counted)", snap.Categories["sf"])
	}
	if snap.Categories["classics"] != 1 {
		t.Errorf("classics = %d", snap.Categories["classics"])
	}
}

func TestAggregate_YearlyTrend(t *testing.T) {
	var books []*book.Book
	for i := 0; i < 3; i++ {
		books = append(books, finished("a", "2024-06-01 00:00:00", 100))
	}
	for i := 0; i < 5; i++ {
		books = append(books, finished("b", "2025-06-01 00:00:00", 100))
	}
	snap := stats.Aggregate(books)

	y24 := snap.Yearly["2024"]
	if y24.Count != 3 || y24.Change != 3 || y24.ChangePercent != 100 {
		t.Errorf("2024 = %+v", y24)
	}
	y25 := snap.Yearly["2025"]
	if y25.Count != 5 || y25.Change != 2 {
		t.Errorf("2025 = %+v", y25)
	}
	if y25.ChangePercent != 67 {
		t.Errorf("2025 changePercent = %d, want 67 (rounded from 66.67)", y25.ChangePercent)
	}
	if y25.Pages != 500 {
		t.Errorf("2025 pages = %d", y25.Pages)
	}
}

func TestAggregate_MonthlyBuckets(t *testing.T) {
	books := []*book.Book{
		finished("a", "2025-01-10 00:00:00", 100),
		finished("b", "2025-01-25 00:00:00", 150),
		finished("c", "2025-02-02 00:00:00", 200),
	}
	snap := stats.Aggregate(books)
	jan := snap.Monthly["2025-01"]
	if jan.Count != 2 || jan.Pages != 250 {
		t.Errorf("2025-01 = %+v", jan)
	}
	feb := snap.Monthly["2025-02"]
	if feb.Count != 1 || feb.Change != -1 {
		t.Errorf("2025-02 = %+v", feb)
	}
	if feb.ChangePercent != -50 {
		t.Errorf("2025-02 changePercent = %d, want -50", feb.ChangePercent)
	}
}

func TestAggregate_FinishedWithoutDateExcludedFromBuckets(t *testing.T) {
	snap := stats.Aggregate([]*book.Book{finished("a", "", 100)})
	if snap.Finished != 1 {
		t.Errorf("Finished = %d", snap.Finished)
	}
	if len(snap.Yearly) != 0 || len(snap.Monthly) != 0 {
		t.Errorf("dateless finish produced buckets: %+v", snap.Yearly)
	}
}

func TestAggregate_DistinctReadingDays(t *testing.T) {
	books := []*book.Book{
		{
			Title:     "a",
			Status:    book.StatusReading,
			StartedAt: "2025-01-01 08:00:00",
			Summary: []history.SummaryEntry{
				{Date: "2025-01-01"},
				{Date: "2025-01-02"},
			},
		},
		{
			Title:  "b",
			Status: book.StatusReading,
			Summary: []history.SummaryEntry{
				{Date: "2025-01-02"},
				{Date: "2025-01-03"},
			},
		},
	}
	snap := stats.Aggregate(books)
	if snap.ReadingDays != 3 {
		t.Errorf("ReadingDays = %d, want 3 (union of touched dates)", snap.ReadingDays)
	}
}

func TestAggregate_AvgDaysToFinish(t *testing.T) {
	books := []*book.Book{
		{
			Title:      "a",
			Status:     book.StatusFinished,
			FinishedAt: "2025-02-01 00:00:00",
			StartedAt:  "2025-01-01 08:00:00",
			Summary: []history.SummaryEntry{
				{Date: "2025-01-01"}, // same day as start, deduplicated
				{Date: "2025-01-02"},
				{Date: "2025-01-03"},
			},
		},
		{
			Title:      "b",
			Status:     book.StatusFinished,
			FinishedAt: "2025-03-01 00:00:00",
			Summary: []history.SummaryEntry{
				{Date: "2025-02-28"},
			},
		},
		// No date data: excluded from the average.
		finished("c", "", 10),
	}
	snap := stats.Aggregate(books)
	if snap.AvgDaysToFinish != 2 {
		t.Errorf("AvgDaysToFinish = %v, want 2 ((3+1)/2)", snap.AvgDaysToFinish)
	}
}

func TestAggregate_InvalidDatesIgnored(t *testing.T) {
	books := []*book.Book{
		{
			Title:      "a",
			Status:     book.StatusFinished,
			FinishedAt: "not a date",
			Summary:    []history.SummaryEntry{{Date: "garbage"}},
		},
	}
	snap := stats.Aggregate(books)
	if len(snap.Yearly) != 0 {
		t.Errorf("invalid finish date produced bucket: %+v", snap.Yearly)
	}
	if snap.ReadingDays != 0 {
		t.Errorf("ReadingDays = %d", snap.ReadingDays)
	}
}
