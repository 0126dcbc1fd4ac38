package invoice

import (
	"erp/backend/internal/entity"

	"github.com/uptrace/bun"
)

type Filter struct {
	Search *string
}

type CreateHeaderRequest struct {
	InvoiceNo     string
	Date          string
	CustomerName  string
	TotalAmount   float64
	GSTPercentage float64
	PaymentMethod string
	GRNDateFrom   *string
	GRNDateTo     *string
	PONumber      string
}

type LineItemRequest struct {
	InvoiceNo       string
	LineNo          int
	ItemDescription string
	PartNo          string
	HSNCode         string
	Quantity        float64
	Rate            float64
	Amount          float64
}

type LineItemModel struct {
	bun.BaseModel `bun:"table:invoice_line_items"`

	ID int64 `json:"id" bun:"-"`

	InvoiceNo       string  `json:"invoice_no" bun:"invoice_no"`
	LineNo          int     `json:"line_no" bun:"line_no"`
	ItemDescription string  `json:"item_description" bun:"item_description"`
	PartNo          string  `json:"part_no" bun:"part_no"`
	HSNCode         string  `json:"hsn_code" bun:"hsn_code"`
	Quantity        float64 `json:"quantity" bun:"quantity"`
	Rate            float64 `json:"rate" bun:"rate"`
	Amount          float64 `json:"amount" bun:"amount"`
}

// Patch maps header column names to new values. A nil value stores NULL.
type Patch map[string]any

// Columns a Patch may touch.
const (
	ColumnDate          = "date"
	ColumnCustomerName  = "customer_name"
	ColumnTotalAmount   = "total_amount"
	ColumnGSTPercentage = "gst_percentage"
	ColumnPaymentMethod = "payment_method"
	ColumnGRNDateFrom   = "grn_date_from"
	ColumnGRNDateTo     = "grn_date_to"
	ColumnPONumber      = "po_number"
)

var patchable = map[string]struct{}{
	ColumnDate:          {},
	ColumnCustomerName:  {},
	ColumnTotalAmount:   {},
	ColumnGSTPercentage: {},
	ColumnPaymentMethod: {},
	ColumnGRNDateFrom:   {},
	ColumnGRNDateTo:     {},
	ColumnPONumber:      {},
}

type Detail struct {
	Header entity.InvoiceHeader     `json:"header"`
	Items  []entity.InvoiceLineItem `json:"items"`
}
