package worker

import (
	"context"
	"database/sql"

	"erp/backend/internal/entity"
	"erp/backend/internal/pkg/repository/sqlitedb"
	"erp/backend/internal/repository/sqlite"

	"github.com/pkg/errors"
)

type Repository struct {
	*sqlitedb.Database
}

func NewRepository(database *sqlitedb.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context) ([]entity.Worker, error) {
	list := make([]entity.Worker, 0)

	err := r.NewSelect().Model(&list).OrderExpr("first_name, last_name").Scan(ctx)
	if err != nil {
		r.Logf("worker list", "-", err)
		return nil, errors.Wrap(err, "selecting workers")
	}

	return list, nil
}

func (r Repository) GetById(ctx context.Context, id int64) (entity.Worker, error) {
	var detail entity.Worker

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Worker{}, sqlite.ErrNotFound
	}
	if err != nil {
		r.Logf("worker detail", id, err)
		return entity.Worker{}, errors.Wrap(err, "selecting worker")
	}

	return detail, nil
}

// Create inserts a worker and returns the generated id.
func (r Repository) Create(ctx context.Context, request CreateRequest) (int64, error) {
	response := CreateResponse{
		FirstName:          request.FirstName,
		LastName:           request.LastName,
		PhotoPath:          request.PhotoPath,
		Address:            request.Address,
		ContactNumber:      request.ContactNumber,
		PreviousExperience: request.PreviousExperience,
		SalaryAmount:       request.SalaryAmount,
		SalaryFrequency:    request.SalaryFrequency,
		Role:               request.Role,
		JoiningDate:        request.JoiningDate,
		IDProofPath:        request.IDProofPath,
	}

	_, err := r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		r.Logf("worker create", request.FirstName, err)
		return 0, errors.Wrap(err, "creating worker")
	}

	return response.ID, nil
}

// UpdateAll overwrites every column of the worker row.
func (r Repository) UpdateAll(ctx context.Context, request UpdateRequest) error {
	q := r.NewUpdate().Table("workers").Where("id = ?", request.ID)

	q.Set("first_name = ?", request.FirstName)
	q.Set("last_name = ?", request.LastName)
	q.Set("photo_path = ?", request.PhotoPath)
	q.Set("address = ?", request.Address)
	q.Set("contact_number = ?", request.ContactNumber)
	q.Set("previous_experience = ?", request.PreviousExperience)
	q.Set("salary_amount = ?", request.SalaryAmount)
	q.Set("salary_frequency = ?", request.SalaryFrequency)
	q.Set("role = ?", request.Role)
	q.Set("joining_date = ?", request.JoiningDate)
	q.Set("id_proof_path = ?", request.IDProofPath)

	res, err := q.Exec(ctx)
	if err != nil {
		r.Logf("worker update", request.ID, err)
		return errors.Wrap(err, "updating worker")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sqlite.ErrNotFound
	}

	return nil
}

// Delete removes the worker with its attendance and overtime rows.
// Photo and ID proof files stay on disk.
func (r Repository) Delete(ctx context.Context, id int64) error {
	if err := r.DeleteRow(ctx, "workers", "id", id); err != nil {
		r.Logf("worker delete", id, err)
		return err
	}

	return nil
}
