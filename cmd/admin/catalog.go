package main

import (
	"context"

	"erp/backend/internal/pkg/repository/sqlitedb"
	"erp/backend/internal/repository/sqlite"
	"erp/backend/internal/repository/sqlite/description"
	"erp/backend/internal/repository/sqlite/invoice"
	"erp/backend/internal/service"

	"github.com/pkg/errors"
)

// importDescriptions loads catalog rows from an xlsx file. It returns the
// number stored and the spreadsheet rows that were skipped.
func importDescriptions(ctx context.Context, db *sqlitedb.Database, filePath string) (int, []int, error) {
	repo := description.NewRepository(db)

	names, err := repo.GetList(ctx)
	if err != nil {
		return 0, nil, err
	}
	existing := make(map[string]struct{}, len(names))
	for _, n := range names {
		existing[n] = struct{}{}
	}

	list, skipped, err := service.ReadDescriptionsFromExcel(filePath, existing)
	if err != nil {
		return 0, nil, errors.Wrap(err, "reading catalog file")
	}

	stored := 0
	for _, request := range list {
		err = repo.Create(ctx, request)
		if errors.Is(err, sqlite.ErrDuplicate) || errors.Is(err, description.ErrInvalidRate) {
			db.Logf("catalog import skipped", request.Description, err)
			continue
		}
		if err != nil {
			return stored, skipped, err
		}
		stored++
	}

	return stored, skipped, nil
}

// nextInvoice returns the suggested number for a new invoice.
func nextInvoice(ctx context.Context, db *sqlitedb.Database) string {
	return invoice.NewRepository(db).NextInvoiceNo(ctx)
}
