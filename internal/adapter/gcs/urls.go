package gcs

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/heartmarshall/lingua-backend/internal/config"
)

// URLBuilder turns object keys into public URLs without touching the network.
type URLBuilder struct {
	bucket        string
	cdnDomain     string
	publicBaseURL string
	emulatorHost  string
}

// NewURLBuilder creates a URLBuilder from storage settings.
func NewURLBuilder(cfg config.StorageConfig) URLBuilder {
	return URLBuilder{
		bucket:        cfg.Bucket,
		cdnDomain:     strings.Trim(strings.TrimSpace(cfg.CDNDomain), "/"),
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		emulatorHost:  strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/"),
	}
}

// Bucket returns the configured bucket name.
func (b URLBuilder) Bucket() string {
	return b.bucket
}

// PublicURL returns the public URL of key, or "" for a blank key.
// The object is not checked for existence.
func (b URLBuilder) PublicURL(key string) string {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return ""
	}

	escaped := escapeKey(key)

	switch {
	case b.cdnDomain != "":
		return fmt.Sprintf("https://%s/%s", b.cdnDomain, escaped)
	case b.emulatorHost != "":
		base := b.publicBaseURL
		if base == "" {
			base = b.emulatorHost
		}
		return fmt.Sprintf("%s/storage/v1/b/%s/o/%s?alt=media", base, url.PathEscape(b.bucket), url.PathEscape(key))
	case b.publicBaseURL != "":
		return fmt.Sprintf("%s/%s/%s", b.publicBaseURL, url.PathEscape(b.bucket), escaped)
	default:
		return fmt.Sprintf("https://storage.googleapis.com/%s/%s", url.PathEscape(b.bucket), escaped)
	}
}

// escapeKey percent-encodes each segment of key and keeps the slashes, so
// path-style URLs address the object named exactly key.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
