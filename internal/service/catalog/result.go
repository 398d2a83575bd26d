package catalog

import "github.com/heartmarshall/lingua-backend/internal/domain"

// StudioPage is one page of the studio listing.
type StudioPage struct {
	Page     int
	PageSize int
	Total    int
	Items    []domain.EntryWithAudios
}
