package entity

import (
	"github.com/uptrace/bun"
)

type Overtime struct {
	bun.BaseModel `bun:"table:overtime"`

	ID       int64   `json:"id" bun:"id,pk,autoincrement"`
	WorkerID int64   `json:"worker_id" bun:"worker_id"`
	Date     string  `json:"date" bun:"date"`
	OTHours  float64 `json:"ot_hours" bun:"ot_hours"`
	OTRate   float64 `json:"ot_rate" bun:"ot_rate"`
	OTAmount float64 `json:"ot_amount" bun:"ot_amount"`
}
