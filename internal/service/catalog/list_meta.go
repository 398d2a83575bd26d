package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

var generalOnly = []string{domain.GeneralIntent}

// ListIntents returns the distinct intents of a domain, sorted. A domain
// with no intents, a blank domain and a schema without the intent column
// all yield ["general"].
func (s *Service) ListIntents(ctx context.Context, domainName string) ([]string, error) {
	domainName = strings.TrimSpace(domainName)
	if domainName == "" {
		return append([]string(nil), generalOnly...), nil
	}

	raw, err := s.entries.Intents(ctx, domainName)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaDrift) {
			s.log.WarnContext(ctx, "intent schema drift, serving general",
				slog.String("domain", domainName),
				slog.String("column", missingColumn(err)),
			)
			return append([]string(nil), generalOnly...), nil
		}
		return nil, fmt.Errorf("list intents: %w", err)
	}

	intents := domain.UniqueSortedNonEmpty(raw)
	if len(intents) == 0 {
		return append([]string(nil), generalOnly...), nil
	}
	return intents, nil
}

// ListDomains returns every distinct non-blank domain, sorted.
func (s *Service) ListDomains(ctx context.Context) ([]string, error) {
	raw, err := s.entries.Domains(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	return domain.UniqueSortedNonEmpty(raw), nil
}
