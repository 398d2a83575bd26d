package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// SQLSTATE codes the adapter reacts to.
const (
	codeCheckViolation  = "23514"
	codeUndefinedColumn = "42703"
)

// MapError converts pgx/pgconn errors to domain errors, prefixed with op.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	if IsUndefinedColumn(err) {
		return fmt.Errorf("%s: %w", op, &domain.SchemaDriftError{Column: undefinedColumn(err), Err: err})
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation {
		return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, pgErr.Message)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", op, err)
}

// IsUndefinedColumn reports whether err means the query named a column the
// schema does not have. Errors that are not *pgconn.PgError are matched by
// message, so wrapped driver errors from proxies are recognized too.
func IsUndefinedColumn(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUndefinedColumn
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "column") && strings.Contains(msg, "does not exist")
}

// undefinedColumn pulls the column name out of messages such as
// `column "intent" does not exist` or `column e.intent does not exist`.
// It returns "" when the message has another shape.
func undefinedColumn(err error) string {
	msg := err.Error()
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		msg = pgErr.Message
	}

	_, rest, ok := strings.Cut(msg, "column ")
	if !ok {
		return ""
	}
	name, _, ok := strings.Cut(rest, " does not exist")
	if !ok {
		return ""
	}
	name = strings.Trim(name, `"`)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = strings.Trim(name[i+1:], `"`)
	}
	return name
}
