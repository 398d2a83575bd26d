package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ContainsAny matches text as a literal, case-insensitive substring of any
// of the columns. LIKE metacharacters in text are escaped.
func ContainsAny(text string, columns ...string) sq.Or {
	pattern := domain.ContainsPattern(text)
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}
	return or
}
