package overtime

import (
	"context"

	"erp/backend/internal/entity"
	"erp/backend/internal/pkg/repository/sqlitedb"

	"github.com/pkg/errors"
)

type Repository struct {
	*sqlitedb.Database
}

func NewRepository(database *sqlitedb.Database) *Repository {
	return &Repository{Database: database}
}

// Create appends an entry. Several entries for the same worker and
// day are kept side by side.
func (r Repository) Create(ctx context.Context, request CreateRequest) (int64, error) {
	response := CreateResponse{
		WorkerID: request.WorkerID,
		Date:     request.Date.String(),
		OTHours:  request.OTHours,
		OTRate:   request.OTRate,
		OTAmount: request.OTAmount,
	}

	_, err := r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		r.Logf("overtime create", request.WorkerID, err)
		return 0, errors.Wrap(err, "creating overtime")
	}

	return response.ID, nil
}

func (r Repository) GetListByWorker(ctx context.Context, workerID int64, filter Filter) ([]entity.Overtime, error) {
	list := make([]entity.Overtime, 0)

	err := r.NewSelect().
		Model(&list).
		Where("worker_id = ?", workerID).
		Where("date BETWEEN ? AND ?", filter.From.String(), filter.To.String()).
		OrderExpr("date DESC").
		Scan(ctx)
	if err != nil {
		r.Logf("overtime list by worker", workerID, err)
		return nil, errors.Wrap(err, "selecting overtime")
	}

	return list, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]entity.Overtime, error) {
	list := make([]entity.Overtime, 0)

	err := r.NewSelect().
		Model(&list).
		Where("date BETWEEN ? AND ?", filter.From.String(), filter.To.String()).
		OrderExpr("date DESC, worker_id ASC").
		Scan(ctx)
	if err != nil {
		r.Logf("overtime list", filter.From, err)
		return nil, errors.Wrap(err, "selecting overtime")
	}

	return list, nil
}

// GetSummary totals hours and amounts per worker over the range.
func (r Repository) GetSummary(ctx context.Context, filter Filter) ([]SummaryRow, error) {
	list := make([]SummaryRow, 0)

	err := r.NewSelect().
		TableExpr("overtime AS o").
		Join("JOIN workers AS w ON w.id = o.worker_id").
		ColumnExpr("o.worker_id").
		ColumnExpr("w.first_name").
		ColumnExpr("w.last_name").
		ColumnExpr("count(*) AS entries").
		ColumnExpr("sum(o.ot_hours) AS total_hours").
		ColumnExpr("sum(o.ot_amount) AS total_amount").
		Where("o.date BETWEEN ? AND ?", filter.From.String(), filter.To.String()).
		GroupExpr("o.worker_id, w.first_name, w.last_name").
		OrderExpr("w.first_name, w.last_name").
		Scan(ctx, &list)
	if err != nil {
		r.Logf("overtime summary", filter.From, err)
		return nil, errors.Wrap(err, "selecting overtime summary")
	}

	return list, nil
}
