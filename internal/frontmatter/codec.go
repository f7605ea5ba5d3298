// Package frontmatter parses and serializes the structured key/value
// header block at the top of a vault document. The codec is deliberately
// forgiving: a missing delimiter yields an empty mapping, a malformed line
// is skipped, and nothing in here ever returns an error. Documents written
// by hand, by older tool versions, or by other editors must stay readable.
package frontmatter

import (
	"strconv"
	"strings"
)

const delimiter = "---"

// Parse splits text into its frontmatter mapping and the remaining body.
// When no header block is present the mapping is empty and the body is the
// whole input.
func Parse(text string) (*Map, string) {
	lines := splitLines(text)
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != delimiter {
		return NewMap(), text
	}

	close := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == delimiter {
			close = i
			break
		}
	}
	if close == -1 {
		// Opening fence without a closing one: treat as plain body.
		return NewMap(), text
	}

	m := parseHeader(lines[1:close])
	body := strings.Join(lines[close+1:], "\n")
	return m, body
}

// Serialize renders the mapping back to a delimited header block, keys in
// insertion order, with a trailing newline after the closing delimiter.
func Serialize(m *Map) string {
	var b strings.Builder
	b.WriteString(delimiter + "\n")
	for _, key := range m.Keys() {
		v, _ := m.Get(key)
		writeField(&b, key, v)
	}
	b.WriteString(delimiter + "\n")
	return b.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func parseHeader(lines []string) *Map {
	m := NewMap()
	i := 0
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}
		if indent(line) > 0 {
			// Continuation line with no owning key. Skip it.
			i++
			continue
		}
		key, rest, ok := splitKeyValue(line)
		if !ok {
			i++
			continue
		}
		if rest != "" {
			m.Set(key, coerceScalar(rest))
			i++
			continue
		}
		v, next := parseBlock(lines, i+1)
		m.Set(key, v)
		i = next
	}
	return m
}

// parseBlock consumes the indented block sequence following a bare "key:"
// line. It returns the parsed value and the index of the first line after
// the block. An empty block degrades to an empty string scalar.
func parseBlock(lines []string, start int) (Value, int) {
	var items []Value
	var records []Record
	var current *Record

	i := start
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			continue
		}
		ind := indent(line)
		if ind == 0 {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || trimmed == "-" {
			item := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
			if k, v, ok := splitKeyValue(item); ok {
				rec := NewRecord()
				rec.Set(k, coerceScalar(v))
				records = append(records, *rec)
				current = &records[len(records)-1]
			} else if item != "" {
				items = append(items, coerceScalar(item))
				current = nil
			}
			i++
			continue
		}
		// Continuation field of the current record.
		if current != nil {
			if k, v, ok := splitKeyValue(trimmed); ok {
				current.Set(k, coerceScalar(v))
			}
		}
		i++
	}

	switch {
	case len(records) > 0:
		return RecordsOf(records...), i
	case len(items) > 0:
		return ListOf(items...), i
	default:
		return String(""), i
	}
}

func indent(line string) int {
	n := 0
	for _, r := range line {
		if r == ' ' {
			n++
		} else if r == '\t' {
			n += 2
		} else {
			break
		}
	}
	return n
}

// splitKeyValue splits "key: value" on the first colon. The value part may
// be empty (block follow-on). Lines without a colon, or with an empty key,
// are rejected.
func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

// coerceScalar applies the field coercion rules: quoted text stays a
// string, "true"/"false" become booleans, numeric-looking text becomes a
// number, and a bracketed comma list becomes a scalar list.
func coerceScalar(s string) Value {
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return String(unquote(s))
	}
	switch s {
	case "true":
		return Boolean(true)
	case "false":
		return Boolean(false)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(n)
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return parseInlineList(s[1 : len(s)-1])
	}
	return String(s)
}

func parseInlineList(inner string) Value {
	if strings.TrimSpace(inner) == "" {
		return ListOf()
	}
	var items []Value
	var cur strings.Builder
	inQuote := false
	escaped := false
	for _, r := range inner {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && inQuote:
			cur.WriteRune(r)
			escaped = true
		case r == '"':
			cur.WriteRune(r)
			inQuote = !inQuote
		case r == ',' && !inQuote:
			items = append(items, coerceScalar(strings.TrimSpace(cur.String())))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if item := strings.TrimSpace(cur.String()); item != "" {
		items = append(items, coerceScalar(item))
	}
	return ListOf(items...)
}

func unquote(s string) string {
	quote := s[0]
	s = s[1 : len(s)-1]
	if quote == '\'' {
		return strings.ReplaceAll(s, "''", "'")
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func writeField(b *strings.Builder, key string, v Value) {
	switch v.Kind {
	case KindList:
		b.WriteString(key + ": [")
		for i, item := range v.List {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(renderScalar(item))
		}
		b.WriteString("]\n")
	case KindRecords:
		b.WriteString(key + ":\n")
		for _, rec := range v.Records {
			for i, k := range rec.Keys() {
				fv, _ := rec.Get(k)
				prefix := "    "
				if i == 0 {
					prefix = "  - "
				}
				b.WriteString(prefix + k + ": " + renderScalar(fv) + "\n")
			}
		}
	default:
		b.WriteString(key + ": " + renderScalar(v) + "\n")
	}
}

func renderScalar(v Value) string {
	if v.Kind != KindString {
		return v.AsString()
	}
	if needsQuote(v.Str) {
		return quote(v.Str)
	}
	return v.Str
}

// needsQuote reports whether a string must be quoted to survive a
// re-parse unchanged: anything empty, coercible, or containing characters
// outside the bare identifier set.
func needsQuote(s string) bool {
	if s == "" || s == "true" || s == "false" {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return true
		}
	}
	return false
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
