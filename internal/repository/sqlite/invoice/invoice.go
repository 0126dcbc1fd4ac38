package invoice

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"erp/backend/internal/entity"
	"erp/backend/internal/pkg/repository/sqlitedb"
	"erp/backend/internal/repository/sqlite"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var (
	ErrUnknownField = errors.New("unknown invoice field")
	ErrEmptyPatch   = errors.New("nothing to update")
)

type Repository struct {
	*sqlitedb.Database
}

func NewRepository(database *sqlitedb.Database) *Repository {
	return &Repository{Database: database}
}

// CreateHeader returns sqlite.ErrDuplicate when the invoice number is taken.
func (r Repository) CreateHeader(ctx context.Context, request CreateHeaderRequest) error {
	header := entity.InvoiceHeader{
		InvoiceNo:     request.InvoiceNo,
		Date:          request.Date,
		CustomerName:  request.CustomerName,
		TotalAmount:   request.TotalAmount,
		GSTPercentage: request.GSTPercentage,
		PaymentMethod: request.PaymentMethod,
		GRNDateFrom:   request.GRNDateFrom,
		GRNDateTo:     request.GRNDateTo,
		PONumber:      request.PONumber,
	}

	_, err := r.NewInsert().Model(&header).Exec(ctx)
	if sqlite.IsUniqueViolation(err) {
		return sqlite.ErrDuplicate
	}
	if err != nil {
		r.Logf("invoice header create", request.InvoiceNo, err)
		return errors.Wrap(err, "creating invoice header")
	}

	return nil
}

// CreateLineItems inserts all items or none.
func (r Repository) CreateLineItems(ctx context.Context, items []LineItemRequest) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]LineItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, LineItemModel{
			InvoiceNo:       item.InvoiceNo,
			LineNo:          item.LineNo,
			ItemDescription: item.ItemDescription,
			PartNo:          item.PartNo,
			HSNCode:         item.HSNCode,
			Quantity:        item.Quantity,
			Rate:            item.Rate,
			Amount:          item.Amount,
		})
	}

	err := r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&models).Exec(ctx)
		return err
	})
	if sqlite.IsUniqueViolation(err) {
		return sqlite.ErrDuplicate
	}
	if err != nil {
		r.Logf("invoice items create", items[0].InvoiceNo, err)
		return errors.Wrap(err, "creating invoice line items")
	}

	return nil
}

func (r Repository) GetHeader(ctx context.Context, invoiceNo string) (entity.InvoiceHeader, error) {
	var header entity.InvoiceHeader

	err := r.NewSelect().Model(&header).Where("invoice_no = ?", invoiceNo).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.InvoiceHeader{}, sqlite.ErrNotFound
	}
	if err != nil {
		r.Logf("invoice header", invoiceNo, err)
		return entity.InvoiceHeader{}, errors.Wrap(err, "selecting invoice header")
	}

	return header, nil
}

func (r Repository) GetLineItems(ctx context.Context, invoiceNo string) ([]entity.InvoiceLineItem, error) {
	items := make([]entity.InvoiceLineItem, 0)

	err := r.NewSelect().Model(&items).Where("invoice_no = ?", invoiceNo).OrderExpr("line_no").Scan(ctx)
	if err != nil {
		r.Logf("invoice items", invoiceNo, err)
		return nil, errors.Wrap(err, "selecting invoice line items")
	}

	return items, nil
}

func (r Repository) GetDetail(ctx context.Context, invoiceNo string) (Detail, error) {
	header, err := r.GetHeader(ctx, invoiceNo)
	if err != nil {
		return Detail{}, err
	}

	items, err := r.GetLineItems(ctx, invoiceNo)
	if err != nil {
		return Detail{}, err
	}

	return Detail{Header: header, Items: items}, nil
}

// UpdateColumns writes only the columns present in patch.
func (r Repository) UpdateColumns(ctx context.Context, invoiceNo string, patch Patch) error {
	if len(patch) == 0 {
		return ErrEmptyPatch
	}

	columns := make([]string, 0, len(patch))
	for column := range patch {
		if _, ok := patchable[column]; !ok {
			return errors.Wrap(ErrUnknownField, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	q := r.NewUpdate().Table("invoice_headers").Where("invoice_no = ?", invoiceNo)
	for _, column := range columns {
		q.Set("? = ?", bun.Ident(column), patch[column])
	}

	res, err := q.Exec(ctx)
	if err != nil {
		r.Logf("invoice header update", invoiceNo, err)
		return errors.Wrap(err, "updating invoice header")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sqlite.ErrNotFound
	}

	return nil
}

func (r Repository) DeleteLineItems(ctx context.Context, invoiceNo string) error {
	if err := r.DeleteRow(ctx, "invoice_line_items", "invoice_no", invoiceNo); err != nil {
		r.Logf("invoice items delete", invoiceNo, err)
		return err
	}

	return nil
}

// DeleteHeader removes the invoice; its line items go with it.
func (r Repository) DeleteHeader(ctx context.Context, invoiceNo string) error {
	if err := r.DeleteRow(ctx, "invoice_headers", "invoice_no", invoiceNo); err != nil {
		r.Logf("invoice header delete", invoiceNo, err)
		return err
	}

	return nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]entity.InvoiceHeader, error) {
	list := make([]entity.InvoiceHeader, 0)

	q := r.NewSelect().Model(&list)
	if filter.Search != nil {
		if search := strings.TrimSpace(*filter.Search); search != "" {
			q.Where("invoice_no LIKE ?", "%"+search+"%")
		}
	}

	err := q.OrderExpr("date DESC, invoice_no DESC").Scan(ctx)
	if err != nil {
		r.Logf("invoice list", "-", err)
		return nil, errors.Wrap(err, "selecting invoice headers")
	}

	return list, nil
}

func (r Repository) invoiceNumbers(ctx context.Context) ([]string, error) {
	values := make([]string, 0)

	err := r.NewSelect().Table("invoice_headers").Column("invoice_no").Scan(ctx, &values)
	if err != nil {
		r.Logf("invoice last number", "-", err)
		return nil, errors.Wrap(err, "selecting invoice numbers")
	}

	return values, nil
}

// LastInvoiceNo returns "" when no invoice exists. See LastNumber.
func (r Repository) LastInvoiceNo(ctx context.Context) (string, error) {
	values, err := r.invoiceNumbers(ctx)
	if err != nil {
		return "", err
	}

	return LastNumber(values), nil
}

// NextInvoiceNo suggests the next number. It never fails; storage
// errors fall back to the first number.
func (r Repository) NextInvoiceNo(ctx context.Context) string {
	values, err := r.invoiceNumbers(ctx)
	if err != nil {
		return firstInvoiceNo
	}

	return NextAfter(values)
}

// Create stores header and items. When the items fail the header is
// removed again so no header-only invoice is left behind.
func (r Repository) Create(ctx context.Context, header CreateHeaderRequest, items []LineItemRequest) error {
	if err := r.CreateHeader(ctx, header); err != nil {
		return err
	}

	owned := make([]LineItemRequest, len(items))
	for i, item := range items {
		item.InvoiceNo = header.InvoiceNo
		owned[i] = item
	}

	if err := r.CreateLineItems(ctx, owned); err != nil {
		if derr := r.DeleteHeader(ctx, header.InvoiceNo); derr != nil {
			r.Logf("invoice compensate", header.InvoiceNo, derr)
		}
		return err
	}

	return nil
}

// Replace is the edit flow: patch the header, then swap all line items.
func (r Repository) Replace(ctx context.Context, invoiceNo string, patch Patch, items []LineItemRequest) error {
	if err := r.UpdateColumns(ctx, invoiceNo, patch); err != nil {
		return err
	}

	if err := r.DeleteLineItems(ctx, invoiceNo); err != nil {
		return err
	}

	owned := make([]LineItemRequest, len(items))
	for i, item := range items {
		item.InvoiceNo = invoiceNo
		owned[i] = item
	}

	if err := r.CreateLineItems(ctx, owned); err != nil {
		return errors.Wrap(err, fmt.Sprintf("replacing line items of %s", invoiceNo))
	}

	return nil
}
