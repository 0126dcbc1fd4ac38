package form

import (
	"erp/backend/internal/repository/sqlite/overtime"

	"github.com/Azure/go-autorest/autorest/date"
)

type OvertimeForm struct {
	WorkerID int64  `form:"worker_id" validate:"gt=0"`
	Date     string `form:"date" validate:"required,datetime=2006-01-02"`
	Hours    string `form:"ot_hours" validate:"required,numeric"`
	Rate     string `form:"ot_rate" validate:"required,numeric"`
}

// ToCreateRequest computes ot_amount as hours times rate.
func (f OvertimeForm) ToCreateRequest() (overtime.CreateRequest, error) {
	trim(&f.Date, &f.Hours, &f.Rate)

	if err := check(f); err != nil {
		return overtime.CreateRequest{}, err
	}

	day, err := date.ParseDate(f.Date)
	if err != nil {
		return overtime.CreateRequest{}, fieldError("date", "must be a date like 2024-07-31")
	}

	hours, err := money("ot_hours", f.Hours)
	if err != nil {
		return overtime.CreateRequest{}, err
	}
	if !hours.IsPositive() {
		return overtime.CreateRequest{}, fieldError("ot_hours", "must be greater than 0")
	}

	rate, err := money("ot_rate", f.Rate)
	if err != nil {
		return overtime.CreateRequest{}, err
	}
	if rate.IsNegative() {
		return overtime.CreateRequest{}, fieldError("ot_rate", "must not be negative")
	}

	return overtime.CreateRequest{
		WorkerID: f.WorkerID,
		Date:     day,
		OTHours:  hours.InexactFloat64(),
		OTRate:   rate.InexactFloat64(),
		OTAmount: Amount(hours, rate).InexactFloat64(),
	}, nil
}

// RangeForm is the from/to pair of the overtime filters.
type RangeForm struct {
	From string `form:"from" validate:"required,datetime=2006-01-02"`
	To   string `form:"to" validate:"required,datetime=2006-01-02"`
}

func (f RangeForm) ToFilter() (overtime.Filter, error) {
	trim(&f.From, &f.To)

	if err := check(f); err != nil {
		return overtime.Filter{}, err
	}

	from, err := date.ParseDate(f.From)
	if err != nil {
		return overtime.Filter{}, fieldError("from", "must be a date like 2024-07-31")
	}
	to, err := date.ParseDate(f.To)
	if err != nil {
		return overtime.Filter{}, fieldError("to", "must be a date like 2024-07-31")
	}
	if to.ToTime().Before(from.ToTime()) {
		return overtime.Filter{}, fieldError("to", "must not be before from")
	}

	return overtime.Filter{From: from, To: to}, nil
}
