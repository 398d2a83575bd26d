package missing

import "github.com/heartmarshall/lingua-backend/internal/domain"

// RequestPage is one page of the admin listing.
type RequestPage struct {
	Page     int
	PageSize int
	Total    int
	Items    []domain.MissingRequest
}
