package attendance

import (
	"context"
	"fmt"

	"erp/backend/internal/entity"
	"erp/backend/internal/pkg/repository/sqlitedb"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Repository struct {
	*sqlitedb.Database
}

func NewRepository(database *sqlitedb.Database) *Repository {
	return &Repository{Database: database}
}

// GetRoster lists every worker by name. There is no notion of an
// inactive worker, so nobody is filtered out.
func (r Repository) GetRoster(ctx context.Context) ([]RosterEntry, error) {
	list := make([]RosterEntry, 0)

	err := r.NewSelect().
		Table("workers").
		Column("id", "first_name", "last_name").
		OrderExpr("first_name, last_name").
		Scan(ctx, &list)
	if err != nil {
		r.Logf("attendance roster", "-", err)
		return nil, errors.Wrap(err, "selecting roster")
	}

	return list, nil
}

// GetByDate returns the stored records of day keyed by worker id.
// Workers missing from the map read as DefaultRecord.
func (r Repository) GetByDate(ctx context.Context, day date.Date) (map[int64]Record, error) {
	var rows []entity.Attendance

	err := r.NewSelect().Model(&rows).Where("date = ?", day.String()).Scan(ctx)
	if err != nil {
		r.Logf("attendance by date", day, err)
		return nil, errors.Wrap(err, "selecting attendance")
	}

	records := make(map[int64]Record, len(rows))
	for _, a := range rows {
		records[a.WorkerID] = Record{
			Status:       a.Status,
			PunchInTime:  a.PunchInTime,
			PunchOutTime: a.PunchOutTime,
		}
	}

	return records, nil
}

// Save upserts the whole batch keyed on (worker_id, date) in one
// transaction. Any failure leaves the table as it was.
func (r Repository) Save(ctx context.Context, requests []SaveRequest) error {
	if len(requests) == 0 {
		return nil
	}

	err := r.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, request := range requests {
			model := SaveModel{
				WorkerID:     request.WorkerID,
				Date:         request.Date.String(),
				Status:       request.Status,
				PunchInTime:  request.PunchInTime,
				PunchOutTime: request.PunchOutTime,
			}

			_, err := tx.NewInsert().
				Model(&model).
				On("CONFLICT (worker_id, date) DO UPDATE").
				Set("status = EXCLUDED.status").
				Set("punch_in_time = EXCLUDED.punch_in_time").
				Set("punch_out_time = EXCLUDED.punch_out_time").
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("saving attendance of worker %d", request.WorkerID))
			}
		}
		return nil
	})
	if err != nil {
		r.Logf("attendance save", len(requests), err)
		return err
	}

	return nil
}

// Delete removes one worker's record for day. A missing record is fine.
func (r Repository) Delete(ctx context.Context, workerID int64, day date.Date) error {
	_, err := r.NewDelete().
		Table("attendance").
		Where("worker_id = ? AND date = ?", workerID, day.String()).
		Exec(ctx)
	if err != nil {
		r.Logf("attendance delete", fmt.Sprintf("%d/%s", workerID, day), err)
		return errors.Wrap(err, "deleting attendance")
	}

	return nil
}
