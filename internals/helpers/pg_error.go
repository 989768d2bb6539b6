package helper

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// pgSQLErr is satisfied by pgconn.PgError without importing the driver.
type pgSQLErr interface {
	SQLState() string
}

func sqlState(err error) string {
	var pe pgSQLErr
	if errors.As(err, &pe) {
		return pe.SQLState()
	}
	return ""
}

// IsUniqueViolation reports whether err is a duplicate-key failure.
// Covers postgres SQLSTATE 23505 and the sqlite wording used in tests.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if sqlState(err) == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// IsForeignKeyViolation reports whether err is a broken-reference
// failure (postgres SQLSTATE 23503).
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if sqlState(err) == "23503" {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint")
}
