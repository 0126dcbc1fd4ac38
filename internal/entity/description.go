package entity

import (
	"github.com/uptrace/bun"
)

// Description is a catalog entry used to prefill invoice line items.
type Description struct {
	bun.BaseModel `bun:"table:description_master"`

	ID             int64   `json:"id" bun:"id,pk,autoincrement"`
	Description    string  `json:"description" bun:"description"`
	CustomerPartNo string  `json:"customer_part_no" bun:"customer_part_no"`
	SACCode        string  `json:"sac_code" bun:"sac_code"`
	Rate           float64 `json:"rate" bun:"rate"`
	PONo           string  `json:"po_no" bun:"po_no"`
}
