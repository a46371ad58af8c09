// Package repository holds the gorm-backed implementations of the domain
// repository interfaces. All multi-step writes (cascade deletes, payment
// registration with state update) run inside a single transaction so every
// public operation commits or rolls back as a whole.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// isUniqueViolation detects a uniqueness-constraint violation across the
// drivers we run against: gorm's translated error plus a raw pgconn
// fallback for statements that bypass translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
