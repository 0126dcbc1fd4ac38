package form

import (
	"erp/backend/internal/entity"
	"erp/backend/internal/repository/sqlite/attendance"

	"github.com/Azure/go-autorest/autorest/date"
)

type AttendanceRow struct {
	WorkerID     int64  `form:"worker_id" validate:"gt=0"`
	Present      bool   `form:"present"`
	PunchInTime  string `form:"punch_in_time" validate:"omitempty,clock"`
	PunchOutTime string `form:"punch_out_time" validate:"omitempty,clock"`
}

// AttendanceForm is one day of the attendance sheet.
type AttendanceForm struct {
	Date string          `form:"date" validate:"required,datetime=2006-01-02"`
	Rows []AttendanceRow `form:"rows" validate:"dive"`
}

// ToSaveRequests drops the times of absent rows before checking them.
func (f AttendanceForm) ToSaveRequests() ([]attendance.SaveRequest, error) {
	trim(&f.Date)

	rows := make([]AttendanceRow, len(f.Rows))
	for i, row := range f.Rows {
		if row.Present {
			trim(&row.PunchInTime, &row.PunchOutTime)
		} else {
			row.PunchInTime, row.PunchOutTime = "", ""
		}
		rows[i] = row
	}
	f.Rows = rows

	if err := check(f); err != nil {
		return nil, err
	}

	day, err := date.ParseDate(f.Date)
	if err != nil {
		return nil, fieldError("date", "must be a date like 2024-07-31")
	}

	requests := make([]attendance.SaveRequest, 0, len(f.Rows))
	for _, row := range f.Rows {
		status := entity.StatusAbsent
		if row.Present {
			status = entity.StatusPresent
		}

		requests = append(requests, attendance.SaveRequest{
			WorkerID:     row.WorkerID,
			Date:         day,
			Status:       status,
			PunchInTime:  row.PunchInTime,
			PunchOutTime: row.PunchOutTime,
		})
	}

	return requests, nil
}
