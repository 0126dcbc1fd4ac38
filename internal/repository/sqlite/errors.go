package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	drv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// IsUniqueViolation reports whether err was raised by a UNIQUE or
// PRIMARY KEY constraint.
func IsUniqueViolation(err error) bool {
	var se *drv.Error
	if !errors.As(err, &se) {
		return false
	}

	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(se.Error(), "UNIQUE constraint failed")
	}

	return false
}
