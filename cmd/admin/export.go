package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"erp/backend/internal/form"
	"erp/backend/internal/pkg/config"
	"erp/backend/internal/pkg/repository/sqlitedb"
	"erp/backend/internal/repository/sqlite/invoice"
	"erp/backend/internal/repository/sqlite/overtime"
	"erp/backend/internal/repository/sqlite/worker"
	"erp/backend/internal/service"

	"github.com/pkg/errors"
)

func exportPath(cfg *config.Config, name string) (string, error) {
	if err := os.MkdirAll(cfg.ExportDir, os.ModePerm); err != nil {
		return "", errors.Wrap(err, "creating export directory")
	}
	return filepath.Join(cfg.ExportDir, name), nil
}

// exportInvoice writes invoice no as "xlsx" or "pdf" into the export
// directory and returns the file path.
func exportInvoice(ctx context.Context, db *sqlitedb.Database, cfg *config.Config, no, format string) (string, error) {
	detail, err := invoice.NewRepository(db).GetDetail(ctx, no)
	if err != nil {
		return "", errors.Wrap(err, fmt.Sprintf("loading invoice %s", no))
	}
	gst := form.GSTAmount(detail.Header.TotalAmount, detail.Header.GSTPercentage)

	name := "invoice_" + filepath.Base(no) + "." + format
	path, err := exportPath(cfg, name)
	if err != nil {
		return "", err
	}

	switch format {
	case "xlsx":
		err = service.ExportInvoiceExcel(detail.Header, detail.Items, gst, path)
	case "pdf":
		company := service.Company{
			Name:    cfg.Company.Name,
			Address: cfg.Company.Address,
			Phone:   cfg.Company.Phone,
			GSTIN:   cfg.Company.GSTIN,
		}
		err = service.ExportInvoicePDF(company, detail.Header, detail.Items, gst, path)
	default:
		return "", fmt.Errorf("unknown export format %q, expected xlsx or pdf", format)
	}
	if err != nil {
		return "", err
	}

	return path, nil
}

func exportWorkers(ctx context.Context, db *sqlitedb.Database, cfg *config.Config) (string, error) {
	workers, err := worker.NewRepository(db).GetList(ctx)
	if err != nil {
		return "", err
	}

	path, err := exportPath(cfg, "workers.xlsx")
	if err != nil {
		return "", err
	}

	return path, service.ExportWorkersExcel(workers, path)
}

// exportOvertime writes every overtime entry between from and to,
// both inclusive.
func exportOvertime(ctx context.Context, db *sqlitedb.Database, cfg *config.Config, from, to string) (string, error) {
	filter, err := form.RangeForm{From: from, To: to}.ToFilter()
	if err != nil {
		return "", err
	}

	entries, err := overtime.NewRepository(db).GetList(ctx, filter)
	if err != nil {
		return "", err
	}

	workers, err := worker.NewRepository(db).GetList(ctx)
	if err != nil {
		return "", err
	}
	names := make(map[int64]string, len(workers))
	for _, w := range workers {
		names[w.ID] = w.FullName()
	}

	path, err := exportPath(cfg, fmt.Sprintf("overtime_%s_%s.xlsx", filter.From, filter.To))
	if err != nil {
		return "", err
	}

	return path, service.ExportOvertimeExcel(entries, names, path)
}

// printOvertimeSummary writes per-worker overtime totals for the range to w.
func printOvertimeSummary(ctx context.Context, db *sqlitedb.Database, w io.Writer, from, to string) error {
	filter, err := form.RangeForm{From: from, To: to}.ToFilter()
	if err != nil {
		return err
	}

	rows, err := overtime.NewRepository(db).GetSummary(ctx, filter)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKER\tENTRIES\tHOURS\tAMOUNT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s %s\t%d\t%.2f\t%.2f\n", r.FirstName, r.LastName, r.Entries, r.TotalHours, r.TotalAmount)
	}

	return tw.Flush()
}
