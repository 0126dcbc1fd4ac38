package description

import (
	"github.com/uptrace/bun"
)

type Detail struct {
	CustomerPartNo string  `json:"customer_part_no" bun:"customer_part_no"`
	SACCode        string  `json:"sac_code" bun:"sac_code"`
	Rate           float64 `json:"rate" bun:"rate"`
	PONo           string  `json:"po_no" bun:"po_no"`
}

// CreateRequest carries Rate as typed.
type CreateRequest struct {
	Description    string
	CustomerPartNo string
	SACCode        string
	Rate           string
	PONo           string
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:description_master"`

	ID int64 `json:"id" bun:"-"`

	Description    string  `json:"description" bun:"description"`
	CustomerPartNo string  `json:"customer_part_no" bun:"customer_part_no"`
	SACCode        string  `json:"sac_code" bun:"sac_code"`
	Rate           float64 `json:"rate" bun:"rate"`
	PONo           string  `json:"po_no" bun:"po_no"`
}
