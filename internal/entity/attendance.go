package entity

import (
	"github.com/uptrace/bun"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type Attendance struct {
	bun.BaseModel `bun:"table:attendance"`

	ID           int64  `json:"id" bun:"id,pk,autoincrement"`
	WorkerID     int64  `json:"worker_id" bun:"worker_id"`
	Date         string `json:"date" bun:"date"`
	Status       string `json:"status" bun:"status"`
	PunchInTime  string `json:"punch_in_time" bun:"punch_in_time"`
	PunchOutTime string `json:"punch_out_time" bun:"punch_out_time"`
}
