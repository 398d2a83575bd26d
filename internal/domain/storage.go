package domain

import "time"

// StorageObject is a leaf object found while walking a bucket.
type StorageObject struct {
	Path        string
	Name        string
	Size        *int64
	ContentType *string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// ResolvedStorageObject is a storage object with its fetchable URL.
type ResolvedStorageObject struct {
	StorageObject
	URL *string
}

// StorageChild is one immediate child of a storage directory. Directories
// carry only a name.
type StorageChild struct {
	Name        string
	Dir         bool
	Size        *int64
	ContentType *string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}
