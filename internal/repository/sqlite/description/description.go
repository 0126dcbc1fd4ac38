package description

import (
	"context"
	"database/sql"
	"strings"

	"erp/backend/internal/entity"
	"erp/backend/internal/pkg/repository/sqlitedb"
	"erp/backend/internal/repository/sqlite"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("rate must be a number")

// ParseRate accepts plain decimals such as "75.5" or "1e2". NaN,
// infinities and hex floats are rejected.
func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidRate
	}

	return rate, nil
}

type Repository struct {
	*sqlitedb.Database
}

func NewRepository(database *sqlitedb.Database) *Repository {
	return &Repository{Database: database}
}

// GetList returns every description alphabetically.
func (r Repository) GetList(ctx context.Context) ([]string, error) {
	list := make([]string, 0)

	err := r.NewSelect().
		Table("description_master").
		Column("description").
		OrderExpr("description").
		Scan(ctx, &list)
	if err != nil {
		r.Logf("description list", "-", err)
		return nil, errors.Wrap(err, "selecting descriptions")
	}

	return list, nil
}

func (r Repository) GetByDescription(ctx context.Context, description string) (Detail, error) {
	var row entity.Description

	err := r.NewSelect().
		Model(&row).
		Where("description = ?", description).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return Detail{}, sqlite.ErrNotFound
	}
	if err != nil {
		r.Logf("description detail", description, err)
		return Detail{}, errors.Wrap(err, "selecting description")
	}

	return Detail{
		CustomerPartNo: row.CustomerPartNo,
		SACCode:        row.SACCode,
		Rate:           row.Rate,
		PONo:           row.PONo,
	}, nil
}

// Create returns sqlite.ErrDuplicate when the description exists and
// ErrInvalidRate when the rate is not a finite decimal.
func (r Repository) Create(ctx context.Context, request CreateRequest) error {
	rate, err := ParseRate(request.Rate)
	if err != nil {
		return err
	}

	response := CreateResponse{
		Description:    request.Description,
		CustomerPartNo: request.CustomerPartNo,
		SACCode:        request.SACCode,
		Rate:           rate.InexactFloat64(),
		PONo:           request.PONo,
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if sqlite.IsUniqueViolation(err) {
		return sqlite.ErrDuplicate
	}
	if err != nil {
		r.Logf("description create", request.Description, err)
		return errors.Wrap(err, "creating description")
	}

	return nil
}
