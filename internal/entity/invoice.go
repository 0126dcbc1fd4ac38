package entity

import (
	"github.com/uptrace/bun"
)

type InvoiceHeader struct {
	bun.BaseModel `bun:"table:invoice_headers"`

	InvoiceNo     string  `json:"invoice_no" bun:"invoice_no,pk"`
	Date          string  `json:"date" bun:"date"`
	CustomerName  string  `json:"customer_name" bun:"customer_name"`
	TotalAmount   float64 `json:"total_amount" bun:"total_amount"`
	GSTPercentage float64 `json:"gst_percentage" bun:"gst_percentage"`
	PaymentMethod string  `json:"payment_method" bun:"payment_method"`
	GRNDateFrom   *string `json:"grn_date_from" bun:"grn_date_from"`
	GRNDateTo     *string `json:"grn_date_to" bun:"grn_date_to"`
	PONumber      string  `json:"po_number" bun:"po_number"`
}

type InvoiceLineItem struct {
	bun.BaseModel `bun:"table:invoice_line_items"`

	ID              int64   `json:"id" bun:"id,pk,autoincrement"`
	InvoiceNo       string  `json:"invoice_no" bun:"invoice_no"`
	LineNo          int     `json:"line_no" bun:"line_no"`
	ItemDescription string  `json:"item_description" bun:"item_description"`
	PartNo          string  `json:"part_no" bun:"part_no"`
	HSNCode         string  `json:"hsn_code" bun:"hsn_code"`
	Quantity        float64 `json:"quantity" bun:"quantity"`
	Rate            float64 `json:"rate" bun:"rate"`
	Amount          float64 `json:"amount" bun:"amount"`
}
