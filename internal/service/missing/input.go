package missing

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

const maxQueryLength = 500

// RecordInput is a raw missing-request report.
type RecordInput struct {
	Query          string
	SourceLanguage string
	TargetLanguage string
	Domain         string
}

// key normalizes the input into its composite key: the query trimmed and
// lower-cased, the other parts trimmed, the target language defaulted.
func (i RecordInput) key() domain.MissingRequestKey {
	target := strings.TrimSpace(i.TargetLanguage)
	if target == "" {
		target = domain.DefaultTargetLanguage
	}
	return domain.MissingRequestKey{
		Query:          domain.NormalizeQuery(i.Query),
		SourceLanguage: strings.TrimSpace(i.SourceLanguage),
		TargetLanguage: target,
		Domain:         strings.TrimSpace(i.Domain),
	}
}

func validateKey(k domain.MissingRequestKey) error {
	var errs []domain.FieldError

	if k.Query == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	}
	if utf8.RuneCountInString(k.Query) > maxQueryLength {
		errs = append(errs, domain.FieldError{Field: "query", Message: "longer than 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRequestsInput holds the admin listing parameters.
type ListRequestsInput struct {
	Query    string
	Page     int
	PageSize int
}

func (i ListRequestsInput) filter() domain.RequestFilter {
	return domain.RequestFilter{
		Search: domain.NormalizeQuery(i.Query),
		Page:   domain.NewPage(i.Page, i.PageSize),
	}
}
