// Package dbtest opens throwaway in-memory databases for store tests.
package dbtest

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"testing"

	"erp/backend/internal/commands"
	"erp/backend/internal/pkg/repository/sqlitedb"
)

var seq atomic.Int64

// New returns a migrated in-memory database closed when t finishes.
func New(t *testing.T) *sqlitedb.Database {
	t.Helper()

	path := fmt.Sprintf("file:erptest%d?mode=memory&cache=shared", seq.Add(1))
	db, err := sqlitedb.New(sqlitedb.Config{Path: path}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = commands.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}
