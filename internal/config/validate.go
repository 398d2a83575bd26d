package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// maxSignedURLTTL is the longest expiry accepted for V4 signed URLs.
const maxSignedURLTTL = 7 * 24 * time.Hour

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Catalog.FallbackLimit <= 0 {
		return fmt.Errorf("catalog.fallback_limit must be > 0 (got %d)", c.Catalog.FallbackLimit)
	}
	if c.Catalog.ExportPageSize <= 0 {
		return fmt.Errorf("catalog.export_page_size must be > 0 (got %d)", c.Catalog.ExportPageSize)
	}

	if c.RateLimit.MissingPerMinute <= 0 {
		return fmt.Errorf("rate_limit.missing_per_minute must be > 0 (got %d)", c.RateLimit.MissingPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Bucket = strings.TrimSpace(s.Bucket)
	if s.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}

	if raw := strings.TrimSpace(s.PublicBaseURL); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("public_base_url %q must be an absolute URL", raw)
		}
		s.PublicBaseURL = strings.TrimRight(raw, "/")
	}

	if s.SignedURLTTL <= 0 || s.SignedURLTTL > maxSignedURLTTL {
		return fmt.Errorf("signed_url_ttl must be in (0, %s] (got %s)", maxSignedURLTTL, s.SignedURLTTL)
	}

	return nil
}
