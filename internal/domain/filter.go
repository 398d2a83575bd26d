package domain

import (
	"math"
	"strings"
)

const (
	DefaultPageSize = 20
	MinPageSize     = 5
	MaxPageSize     = 50
)

// EntryQuery selects entries of one domain for the learner-facing lists.
type EntryQuery struct {
	Domain string
	// Intent narrows to one intent; empty or GeneralIntent means no filter.
	Intent string
	// Search is a case-insensitive substring matched against the lemma and
	// primary translation.
	Search string
	// SearchExamples extends Search to the example sentences.
	SearchExamples bool
	Type           *EntryType
}

// FiltersIntent reports whether the query narrows by intent.
func (q EntryQuery) FiltersIntent() bool {
	return q.Intent != "" && q.Intent != GeneralIntent
}

// Page is a 1-based page request with a clamped size.
type Page struct {
	Number int
	Size   int
}

// MaxPageNumber keeps Offset within int for every allowed size.
const MaxPageNumber = math.MaxInt / MaxPageSize

// NewPage clamps number to [1, MaxPageNumber] and size to
// [MinPageSize, MaxPageSize]. A zero size selects DefaultPageSize.
func NewPage(number, size int) Page {
	number = min(max(number, 1), MaxPageNumber)
	if size == 0 {
		size = DefaultPageSize
	}
	size = min(max(size, MinPageSize), MaxPageSize)
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// StudioFilter selects entries for the paginated studio listing.
type StudioFilter struct {
	Search         string
	SourceLanguage string
	Domain         string
	AudioType      string
	Page           Page
}

// AudioFilter narrows the audio rows fetched for a set of entries.
type AudioFilter struct {
	// UploadedOnly keeps only rows with status "uploaded".
	UploadedOnly bool
	// AudioType keeps only rows of this type when non-empty.
	AudioType string
}

// RequestFilter selects missing requests for the admin listing.
type RequestFilter struct {
	Search string
	Page   Page
}

// EscapeLike escapes the LIKE metacharacters in s so that it matches
// literally inside a pattern using backslash as the escape character.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ContainsPattern returns a LIKE pattern matching s as a literal substring.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
