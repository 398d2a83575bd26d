package storage

import (
	"time"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// PathResolver maps a storage-relative path to a URL, or nil.
type PathResolver interface {
	Resolve(path *string) *string
}

// ResolveObjects pairs every object with the URL r gives its path.
func ResolveObjects(r PathResolver, objs []domain.StorageObject) []domain.ResolvedStorageObject {
	out := make([]domain.ResolvedStorageObject, len(objs))
	for i, o := range objs {
		path := o.Path
		out[i] = domain.ResolvedStorageObject{StorageObject: o, URL: r.Resolve(&path)}
	}
	return out
}

// Object is the serialized form of a resolved storage object. The HTTP
// listing, linguactl walk and dataset exports all emit it.
type Object struct {
	Path      string     `json:"path"`
	Name      string     `json:"name"`
	Size      *int64     `json:"size"`
	MimeType  *string    `json:"mimetype"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	URL       *string    `json:"url"`
}

// NewObject converts o to its serialized form.
func NewObject(o domain.ResolvedStorageObject) Object {
	return Object{
		Path:      o.Path,
		Name:      o.Name,
		Size:      o.Size,
		MimeType:  o.ContentType,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		URL:       o.URL,
	}
}

// NewObjects converts objs, returning an empty, non-nil slice for none.
func NewObjects(objs []domain.ResolvedStorageObject) []Object {
	out := make([]Object, 0, len(objs))
	for _, o := range objs {
		out = append(out, NewObject(o))
	}
	return out
}
