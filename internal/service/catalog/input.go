package catalog

import (
	"strings"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// ListEntriesInput holds the query parameters of an entry listing.
type ListEntriesInput struct {
	Domain string
	Intent string
	Query  string
	Type   string
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if t := strings.TrimSpace(i.Type); t != "" && !domain.EntryType(t).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "not word or phrase"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListEntriesInput) query(searchExamples bool) domain.EntryQuery {
	q := domain.EntryQuery{
		Domain:         strings.TrimSpace(i.Domain),
		Intent:         strings.TrimSpace(i.Intent),
		Search:         strings.TrimSpace(i.Query),
		SearchExamples: searchExamples,
	}
	if t := strings.TrimSpace(i.Type); t != "" {
		et := domain.EntryType(t)
		q.Type = &et
	}
	return q
}

// StudioInput holds the query parameters of the studio listing.
// Page and PageSize are normalized, never rejected.
type StudioInput struct {
	Query          string
	SourceLanguage string
	Domain         string
	AudioType      string
	Page           int
	PageSize       int
}

func (i StudioInput) filter() domain.StudioFilter {
	return domain.StudioFilter{
		Search:         strings.TrimSpace(i.Query),
		SourceLanguage: strings.TrimSpace(i.SourceLanguage),
		Domain:         strings.TrimSpace(i.Domain),
		AudioType:      strings.TrimSpace(i.AudioType),
		Page:           domain.NewPage(i.Page, i.PageSize),
	}
}
