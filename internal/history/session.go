// Package history maintains the append-only reading log of a single book:
// the detailed, note-bearing entries in the document body and the compact
// summary mirror kept in the frontmatter header. Both are written by one
// operation so they can never drift apart.
package history

import (
	"github.com/minseon9/readtrack/internal/frontmatter"
)

// Time layouts used throughout the reading log.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// SummaryKey is the reserved frontmatter field holding the summary mirror.
const SummaryKey = "reading_history_summary"

// Session is one detailed reading log entry, stored in the document body.
type Session struct {
	Date      string
	StartPage int
	EndPage   int
	PagesRead int
	Timestamp string
	Notes     string
}

// SummaryEntry is the note-free projection of a Session kept in the
// frontmatter header for aggregation without parsing the body.
type SummaryEntry struct {
	Date      string
	StartPage int
	EndPage   int
	PagesRead int
	Timestamp string
}

// Summary returns the header projection of the session.
func (s Session) Summary() SummaryEntry {
	return SummaryEntry{
		Date:      s.Date,
		StartPage: s.StartPage,
		EndPage:   s.EndPage,
		PagesRead: s.PagesRead,
		Timestamp: s.Timestamp,
	}
}

// PagesTotal sums pagesRead across the summary list.
func PagesTotal(entries []SummaryEntry) int {
	total := 0
	for _, e := range entries {
		total += e.PagesRead
	}
	return total
}

// SummaryValue encodes the summary list as a frontmatter list-of-records
// value.
func SummaryValue(entries []SummaryEntry) frontmatter.Value {
	recs := make([]frontmatter.Record, 0, len(entries))
	for _, e := range entries {
		r := frontmatter.NewRecord()
		r.Set("date", frontmatter.String(e.Date))
		r.Set("startPage", frontmatter.Number(float64(e.StartPage)))
		r.Set("endPage", frontmatter.Number(float64(e.EndPage)))
		r.Set("pagesRead", frontmatter.Number(float64(e.PagesRead)))
		r.Set("timestamp", frontmatter.String(e.Timestamp))
		recs = append(recs, *r)
	}
	return frontmatter.RecordsOf(recs...)
}

// SummaryFromValue decodes the summary list from a frontmatter value.
// Records missing page numbers degrade to zero rather than failing.
func SummaryFromValue(v frontmatter.Value) []SummaryEntry {
	if v.Kind != frontmatter.KindRecords {
		return nil
	}
	entries := make([]SummaryEntry, 0, len(v.Records))
	for _, rec := range v.Records {
		var e SummaryEntry
		if d, ok := rec.Get("date"); ok {
			e.Date = d.AsString()
		}
		if ts, ok := rec.Get("timestamp"); ok {
			e.Timestamp = ts.AsString()
		}
		e.StartPage = recordInt(rec, "startPage")
		e.EndPage = recordInt(rec, "endPage")
		e.PagesRead = recordInt(rec, "pagesRead")
		entries = append(entries, e)
	}
	return entries
}

func recordInt(rec frontmatter.Record, key string) int {
	v, ok := rec.Get(key)
	if !ok {
		return 0
	}
	n, ok := v.AsInt()
	if !ok || n < 0 {
		return 0
	}
	return n
}
