package commands_test

import (
	"context"
	"testing"

	"erp/backend/internal/commands"
	"erp/backend/internal/pkg/repository/sqlitedb/dbtest"
)

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)

	// dbtest already migrated once.
	if err := commands.Migrate(ctx, db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	count, err := db.NewSelect().Table("description_master").Count(ctx)
	if err != nil {
		t.Fatalf("counting catalog: %v", err)
	}
	if count != 3 {
		t.Fatalf("catalog rows = %d, want 3", count)
	}

	for _, table := range []string{"workers", "attendance", "overtime", "invoice_headers", "invoice_line_items"} {
		var n int
		err = db.QueryRowContext(ctx,
			"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&n)
		if err != nil {
			t.Fatalf("looking up %s: %v", table, err)
		}
		if n != 1 {
			t.Fatalf("table %s missing", table)
		}
	}
}

func TestMigrateDoesNotReseedEditedCatalog(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)

	if _, err := db.ExecContext(ctx, "DELETE FROM description_master WHERE description <> 'Paint Coating'"); err != nil {
		t.Fatalf("trimming catalog: %v", err)
	}
	if err := commands.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	count, err := db.NewSelect().Table("description_master").Count(ctx)
	if err != nil {
		t.Fatalf("counting catalog: %v", err)
	}
	if count != 1 {
		t.Fatalf("catalog rows = %d, want 1", count)
	}
}
