package attendance

import (
	"erp/backend/internal/entity"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type RosterEntry struct {
	ID        int64  `json:"id" bun:"id"`
	FirstName string `json:"first_name" bun:"first_name"`
	LastName  string `json:"last_name" bun:"last_name"`
}

// Record is the stored state of one worker on one day.
type Record struct {
	Status       string `json:"status"`
	PunchInTime  string `json:"punch_in_time"`
	PunchOutTime string `json:"punch_out_time"`
}

// DefaultRecord is what a day without a stored row reads as.
func DefaultRecord() Record {
	return Record{Status: entity.StatusAbsent}
}

func (r Record) IsPresent() bool {
	return r.Status == entity.StatusPresent
}

type SaveRequest struct {
	WorkerID     int64
	Date         date.Date
	Status       string
	PunchInTime  string
	PunchOutTime string
}

type SaveModel struct {
	bun.BaseModel `bun:"table:attendance"`

	ID int64 `json:"id" bun:"-"`

	WorkerID     int64  `json:"worker_id" bun:"worker_id"`
	Date         string `json:"date" bun:"date"`
	Status       string `json:"status" bun:"status"`
	PunchInTime  string `json:"punch_in_time" bun:"punch_in_time"`
	PunchOutTime string `json:"punch_out_time" bun:"punch_out_time"`
}
