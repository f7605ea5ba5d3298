package history

import "strings"

// Field identifies one logical field of a detailed log entry.
type Field int

const (
	FieldStartPage Field = iota
	FieldEndPage
	FieldPagesRead
	FieldTimestamp
	FieldNotes
)

// LabelRule maps one field to its accepted label spellings, highest
// priority first. Older tool versions wrote different labels; every
// spelling ever shipped stays readable.
type LabelRule struct {
	Field    Field
	Spellings []string
}

// LabelRules is the synonym table, evaluated in order. Matching is
// case-insensitive and exact per spelling, so "Page" (an end-page synonym)
// never collides with "Pages" (a pages-read synonym).
var LabelRules = []LabelRule{
	{FieldStartPage, []string{"Start Page", "Start", "From"}},
	{FieldEndPage, []string{"End Page", "End", "To", "Page"}},
	{FieldPagesRead, []string{"Pages Read", "Pages", "Read"}},
	{FieldTimestamp, []string{"Timestamp", "Time"}},
	{FieldNotes, []string{"Notes", "Note"}},
}

// MatchLabel resolves a label to its field. The first rule whose spelling
// matches wins.
func MatchLabel(label string) (Field, bool) {
	label = strings.TrimSpace(label)
	for _, rule := range LabelRules {
		for _, spelling := range rule.Spellings {
			if strings.EqualFold(label, spelling) {
				return rule.Field, true
			}
		}
	}
	return 0, false
}
