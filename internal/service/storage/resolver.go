// Package storage resolves object keys to URLs and walks bucket trees.
package storage

import "strings"

type urlBuilder interface {
	PublicURL(key string) string
}

// Resolver maps storage-relative paths to public URLs.
type Resolver struct {
	urls urlBuilder
}

// NewResolver creates a new Resolver.
func NewResolver(urls urlBuilder) *Resolver {
	return &Resolver{urls: urls}
}

// Resolve returns the URL for path, or nil when path is nil or blank.
// It never fails.
func (r *Resolver) Resolve(path *string) *string {
	if path == nil || strings.TrimSpace(*path) == "" {
		return nil
	}
	u := r.urls.PublicURL(*path)
	if u == "" {
		return nil
	}
	return &u
}
