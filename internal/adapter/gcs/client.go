// Package gcs adapts Google Cloud Storage to the listing and URL needs of
// the audio catalog.
package gcs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/heartmarshall/lingua-backend/internal/config"
	"github.com/heartmarshall/lingua-backend/internal/domain"
)

const listTimeout = 30 * time.Second

// Client reads one bucket.
type Client struct {
	URLBuilder

	client *storage.Client
}

// New creates a storage client for cfg.Bucket. With EmulatorHost set the
// client talks to the emulator without authentication.
func New(ctx context.Context, cfg config.StorageConfig, log *slog.Logger) (*Client, error) {
	var opts []option.ClientOption
	mode := "gcs"

	switch {
	case strings.TrimSpace(cfg.EmulatorHost) != "":
		mode = "emulator"
		// The storage library reads the emulator endpoint from the environment.
		if err := os.Setenv("STORAGE_EMULATOR_HOST", strings.TrimRight(strings.TrimSpace(cfg.EmulatorHost), "/")); err != nil {
			return nil, fmt.Errorf("set emulator host: %w", err)
		}
		opts = append(opts, option.WithoutAuthentication())
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	sc, err := storage.NewClient(ctx, append(opts, option.WithScopes(storage.ScopeReadOnly))...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	log.Info("object storage initialized",
		slog.String("mode", mode),
		slog.String("bucket", cfg.Bucket),
		slog.String("public_base_url", cfg.PublicBaseURL),
		slog.String("cdn_domain", cfg.CDNDomain),
	)

	return &Client{
		URLBuilder: NewURLBuilder(cfg),
		client:     sc,
	}, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}

// Ping checks that the bucket is reachable with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.Bucket(c.bucket).Attrs(ctx); err != nil {
		return fmt.Errorf("gcs: bucket %q: %w", c.bucket, err)
	}
	return nil
}

// List returns the immediate children of dir, sorted by name.
// Sub-directories are reported once each with Dir set.
func (c *Client) List(ctx context.Context, dir string) ([]domain.StorageChild, error) {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	prefix := dirPrefix(dir)
	q := &storage.Query{Prefix: prefix, Delimiter: "/"}
	if err := q.SetAttrSelection([]string{"Name", "Size", "ContentType", "Created", "Updated"}); err != nil {
		return nil, fmt.Errorf("list %q: %w", dir, err)
	}

	it := c.client.Bucket(c.bucket).Objects(ctx, q)
	children := []domain.StorageChild{}
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", dir, err)
		}
		if child, ok := childFromAttrs(prefix, attrs); ok {
			children = append(children, child)
		}
	}

	slices.SortFunc(children, func(a, b domain.StorageChild) int {
		return strings.Compare(a.Name, b.Name)
	})
	return children, nil
}

// SignedURL returns a V4 signed GET URL for key valid for ttl.
func (c *Client) SignedURL(key string, ttl time.Duration) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("sign url: %w", domain.NewValidationError("path", "required"))
	}

	u, err := c.client.Bucket(c.bucket).SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("sign url %q: %w", key, err)
	}
	return u, nil
}

func dirPrefix(dir string) string {
	dir = strings.Trim(strings.TrimSpace(dir), "/")
	if dir == "" {
		return ""
	}
	return dir + "/"
}

// childFromAttrs converts one delimiter-listing result. Directory
// placeholder objects (the prefix itself) are skipped.
func childFromAttrs(prefix string, attrs *storage.ObjectAttrs) (domain.StorageChild, bool) {
	if attrs.Prefix != "" {
		name := strings.TrimSuffix(strings.TrimPrefix(attrs.Prefix, prefix), "/")
		if name == "" {
			return domain.StorageChild{}, false
		}
		return domain.StorageChild{Name: name, Dir: true}, true
	}

	name := strings.TrimPrefix(attrs.Name, prefix)
	if name == "" {
		return domain.StorageChild{}, false
	}

	child := domain.StorageChild{Name: name}
	size := attrs.Size
	child.Size = &size
	if attrs.ContentType != "" {
		ct := attrs.ContentType
		child.ContentType = &ct
	}
	if !attrs.Created.IsZero() {
		created := attrs.Created
		child.CreatedAt = &created
	}
	if !attrs.Updated.IsZero() {
		updated := attrs.Updated
		child.UpdatedAt = &updated
	}
	return child, true
}
