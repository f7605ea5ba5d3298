package history

import (
	"strconv"
	"strings"

	"github.com/minseon9/readtrack/internal/section"
)

// DefaultHeading introduces the detailed log section in a document body.
const DefaultHeading = "## Reading History"

// ParseSection extracts the detailed log entries from the named body
// section. Entries that cannot be understood (no date, no readable end
// page) are dropped; the rest of the section still parses.
func ParseSection(body, heading string) []Session {
	if heading == "" {
		heading = DefaultHeading
	}
	start, end, ok := section.Find(body, heading)
	if !ok {
		return nil
	}

	lines := strings.Split(body[start:end], "\n")
	var sessions []Session
	var cur *entryBuilder
	inNotes := false

	flush := func() {
		if cur == nil {
			return
		}
		if s, ok := cur.build(); ok {
			sessions = append(sessions, s)
		}
		cur = nil
	}

	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "### ") {
			flush()
			cur = &entryBuilder{date: strings.TrimSpace(trimmed[4:])}
			inNotes = false
			continue
		}
		if cur == nil {
			continue
		}
		if strings.HasPrefix(trimmed, "- ") {
			inNotes = false
			label, value, ok := splitBullet(trimmed)
			if !ok {
				continue
			}
			field, ok := MatchLabel(label)
			if !ok {
				continue
			}
			switch field {
			case FieldStartPage:
				cur.setStart(value)
			case FieldEndPage:
				cur.setEnd(value)
			case FieldPagesRead:
				cur.setPages(value)
			case FieldTimestamp:
				cur.timestamp = value
			case FieldNotes:
				inNotes = true
				if value != "" {
					cur.notes = append(cur.notes, value)
				}
			}
			continue
		}
		if inNotes && trimmed != "" {
			cur.notes = append(cur.notes, trimmed)
		}
	}
	flush()
	return sessions
}

// splitBullet splits a "- **Label:** value" or "- Label: value" line.
func splitBullet(line string) (label, value string, ok bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "- "))
	if strings.HasPrefix(rest, "**") {
		close := strings.Index(rest[2:], "**")
		if close < 0 {
			return "", "", false
		}
		label = strings.TrimSuffix(strings.TrimSpace(rest[2:2+close]), ":")
		value = strings.TrimPrefix(strings.TrimSpace(rest[4+close:]), ":")
		return strings.TrimSpace(label), strings.TrimSpace(value), label != ""
	}
	idx := strings.Index(rest, ":")
	if idx <= 0 {
		return "", "", false
	}
	return strings.TrimSpace(rest[:idx]), strings.TrimSpace(rest[idx+1:]), true
}

type entryBuilder struct {
	date      string
	start     int
	hasStart  bool
	end       int
	hasEnd    bool
	pages     int
	hasPages  bool
	timestamp string
	notes     []string
}

func (e *entryBuilder) setStart(v string) {
	if n, err := strconv.Atoi(v); err == nil {
		e.start, e.hasStart = n, true
	}
}

func (e *entryBuilder) setEnd(v string) {
	if n, err := strconv.Atoi(v); err == nil {
		e.end, e.hasEnd = n, true
	}
}

func (e *entryBuilder) setPages(v string) {
	if n, err := strconv.Atoi(v); err == nil {
		e.pages, e.hasPages = n, true
	}
}

// build finalizes the entry. An entry needs a date and an end page to be
// usable; anything less is dropped.
func (e *entryBuilder) build() (Session, bool) {
	if e.date == "" || !e.hasEnd {
		return Session{}, false
	}
	s := Session{
		Date:      e.date,
		StartPage: e.start,
		EndPage:   e.end,
		Timestamp: e.timestamp,
		Notes:     strings.Join(e.notes, "\n"),
	}
	if e.hasPages {
		s.PagesRead = e.pages
	} else {
		s.PagesRead = e.end - e.start
	}
	if s.PagesRead < 0 {
		s.PagesRead = 0
	}
	return s, true
}
