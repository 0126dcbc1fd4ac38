package overtime

import (
	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

// Filter bounds are inclusive.
type Filter struct {
	From date.Date
	To   date.Date
}

type CreateRequest struct {
	WorkerID int64
	Date     date.Date
	OTHours  float64
	OTRate   float64
	OTAmount float64
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:overtime"`

	ID int64 `json:"id" bun:"-"`

	WorkerID int64   `json:"worker_id" bun:"worker_id"`
	Date     string  `json:"date" bun:"date"`
	OTHours  float64 `json:"ot_hours" bun:"ot_hours"`
	OTRate   float64 `json:"ot_rate" bun:"ot_rate"`
	OTAmount float64 `json:"ot_amount" bun:"ot_amount"`
}

type SummaryRow struct {
	WorkerID    int64   `json:"worker_id" bun:"worker_id"`
	FirstName   string  `json:"first_name" bun:"first_name"`
	LastName    string  `json:"last_name" bun:"last_name"`
	Entries     int     `json:"entries" bun:"entries"`
	TotalHours  float64 `json:"total_hours" bun:"total_hours"`
	TotalAmount float64 `json:"total_amount" bun:"total_amount"`
}
