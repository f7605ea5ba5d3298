// Package section locates and rewrites one named "## " section inside a
// document body without touching anything around it.
package section

import "strings"

// Find returns the byte span [start, end) of the section introduced by
// heading. The span runs from the heading line to the newline before the
// next "## " heading, or to the end of the body. Sub-headings ("### ")
// belong to the section and do not terminate it.
func Find(body, heading string) (start, end int, ok bool) {
	start = headingIndex(body, heading)
	if start < 0 {
		return 0, 0, false
	}
	return start, nextSection(body, start+len(heading)), true
}

// Upsert replaces the named section with content, or inserts it when
// absent: before the first existing "## " heading if there is one,
// otherwise appended at the end of the body. Content outside the section
// span is left byte-identical.
func Upsert(body, heading, content string) string {
	sec := heading + "\n\n" + strings.TrimRight(content, "\n") + "\n"

	if start, end, ok := Find(body, heading); ok {
		return body[:start] + sec + body[end:]
	}

	if idx := firstHeadingIndex(body); idx >= 0 {
		return body[:idx] + sec + "\n" + body[idx:]
	}

	switch {
	case body == "":
		return sec
	case strings.HasSuffix(body, "\n\n"):
		return body + sec
	case strings.HasSuffix(body, "\n"):
		return body + "\n" + sec
	default:
		return body + "\n\n" + sec
	}
}

// headingIndex finds heading at the start of a line, followed by a line
// break or end of input.
func headingIndex(body, heading string) int {
	from := 0
	for {
		idx := strings.Index(body[from:], heading)
		if idx < 0 {
			return -1
		}
		idx += from
		atLineStart := idx == 0 || body[idx-1] == '\n'
		rest := body[idx+len(heading):]
		atLineEnd := rest == "" || rest[0] == '\n' || rest[0] == '\r'
		if atLineStart && atLineEnd {
			return idx
		}
		from = idx + len(heading)
	}
}

// nextSection returns the index of the newline that precedes the next
// "## " heading at or after from, or len(body).
func nextSection(body string, from int) int {
	pos := strings.Index(body[from:], "\n## ")
	if pos < 0 {
		return len(body)
	}
	return from + pos
}

func firstHeadingIndex(body string) int {
	if strings.HasPrefix(body, "## ") {
		return 0
	}
	pos := strings.Index(body, "\n## ")
	if pos < 0 {
		return -1
	}
	return pos + 1
}
