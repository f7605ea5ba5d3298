package history

import (
	"time"

	"github.com/minseon9/readtrack/internal/section"
)

// RecordOptions tunes a single Record call. The zero value is valid:
// start page is inferred, notes are empty, the default heading is used,
// and the wall clock supplies the session time.
type RecordOptions struct {
	// StartPage overrides the inferred start page when non-nil.
	StartPage *int

	// Notes is free-form text attached to the detailed entry only; the
	// header summary never carries notes.
	Notes string

	// CurrentPage is the document's explicit progress counter, used as the
	// start-page fallback when the body holds no prior sessions.
	CurrentPage int

	// Heading names the body section. Empty means DefaultHeading.
	Heading string

	// Now pins the session time for deterministic output. Zero means
	// time.Now().
	Now time.Time
}

// Record appends one reading session to a document. It parses the existing
// detailed section from body, derives the new session, re-renders the full
// section newest-first, and mirrors the same entry onto the summary list.
// Prior entries in both representations are never modified.
//
// The caller owns persistence: the returned body and summary must be
// written back as one atomic document update.
func Record(body string, summary []SummaryEntry, endPage int, opts RecordOptions) (newBody string, newSummary []SummaryEntry, sess Session) {
	heading := opts.Heading
	if heading == "" {
		heading = DefaultHeading
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	existing := ParseSection(body, heading)

	start := 0
	switch {
	case opts.StartPage != nil:
		start = *opts.StartPage
	case len(existing) > 0:
		start = mostRecent(existing).EndPage
	default:
		start = opts.CurrentPage
	}

	pages := endPage - start
	if pages < 0 {
		// Out-of-order input is tolerated, never rejected here. Callers
		// validate endPage >= startPage before getting this far.
		pages = 0
	}

	sess = Session{
		Date:      now.Format(DateLayout),
		StartPage: start,
		EndPage:   endPage,
		PagesRead: pages,
		Timestamp: now.Format(TimestampLayout),
		Notes:     opts.Notes,
	}

	all := append([]Session{sess}, existing...)
	newBody = section.Upsert(body, heading, Render(all))

	newSummary = make([]SummaryEntry, 0, len(summary)+1)
	newSummary = append(newSummary, summary...)
	newSummary = append(newSummary, sess.Summary())

	return newBody, newSummary, sess
}

// mostRecent picks the session with the greatest (date, timestamp) pair.
// Ties go to the earliest list position, which is the newest entry in a
// freshly rendered section.
func mostRecent(sessions []Session) Session {
	best := sessions[0]
	for _, s := range sessions[1:] {
		if s.Date > best.Date || (s.Date == best.Date && s.Timestamp > best.Timestamp) {
			best = s
		}
	}
	return best
}
