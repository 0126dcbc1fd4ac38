package form

import (
	"strconv"

	"erp/backend/internal/repository/sqlite/invoice"

	"github.com/shopspring/decimal"
)

type LineItemForm struct {
	LineNo          int    `form:"line_no" validate:"gt=0"`
	ItemDescription string `form:"item_description" validate:"required"`
	PartNo          string `form:"part_no"`
	HSNCode         string `form:"hsn_code"`
	Quantity        string `form:"quantity" validate:"required,numeric"`
	Rate            string `form:"rate" validate:"required,numeric"`
}

type InvoiceForm struct {
	InvoiceNo     string         `form:"invoice_no" validate:"required"`
	Date          string         `form:"date" validate:"required,datetime=2006-01-02"`
	CustomerName  string         `form:"customer_name" validate:"required"`
	GSTPercentage string         `form:"gst_percentage" validate:"omitempty,numeric"`
	PaymentMethod string         `form:"payment_method"`
	GRNDateFrom   string         `form:"grn_date_from" validate:"omitempty,datetime=2006-01-02"`
	GRNDateTo     string         `form:"grn_date_to" validate:"omitempty,datetime=2006-01-02"`
	PONumber      string         `form:"po_number"`
	Items         []LineItemForm `form:"items" validate:"required,min=1,unique=LineNo,dive"`
}

// Invoice is a validated form with its amounts worked out.
type Invoice struct {
	Header invoice.CreateHeaderRequest
	Items  []invoice.LineItemRequest
}

// Validate checks every field, computes each line amount and sums them
// into the header total.
func (f InvoiceForm) Validate() (Invoice, error) {
	trim(&f.InvoiceNo, &f.Date, &f.CustomerName, &f.GSTPercentage, &f.PaymentMethod,
		&f.GRNDateFrom, &f.GRNDateTo, &f.PONumber)

	items := make([]LineItemForm, len(f.Items))
	for i, item := range f.Items {
		trim(&item.ItemDescription, &item.PartNo, &item.HSNCode, &item.Quantity, &item.Rate)
		items[i] = item
	}
	f.Items = items

	if err := check(f); err != nil {
		return Invoice{}, err
	}

	gst := decimal.Zero
	if f.GSTPercentage != "" {
		var err error
		if gst, err = money("gst_percentage", f.GSTPercentage); err != nil {
			return Invoice{}, err
		}
	}

	total := decimal.Zero
	lines := make([]invoice.LineItemRequest, 0, len(f.Items))
	for i, item := range f.Items {
		field := "items[" + strconv.Itoa(i) + "]."

		quantity, err := money(field+"quantity", item.Quantity)
		if err != nil {
			return Invoice{}, err
		}
		rate, err := money(field+"rate", item.Rate)
		if err != nil {
			return Invoice{}, err
		}

		amount := Amount(quantity, rate)
		total = total.Add(amount)

		lines = append(lines, invoice.LineItemRequest{
			InvoiceNo:       f.InvoiceNo,
			LineNo:          item.LineNo,
			ItemDescription: item.ItemDescription,
			PartNo:          item.PartNo,
			HSNCode:         item.HSNCode,
			Quantity:        quantity.InexactFloat64(),
			Rate:            rate.InexactFloat64(),
			Amount:          amount.InexactFloat64(),
		})
	}

	return Invoice{
		Header: invoice.CreateHeaderRequest{
			InvoiceNo:     f.InvoiceNo,
			Date:          f.Date,
			CustomerName:  f.CustomerName,
			TotalAmount:   total.InexactFloat64(),
			GSTPercentage: gst.InexactFloat64(),
			PaymentMethod: f.PaymentMethod,
			GRNDateFrom:   optional(f.GRNDateFrom),
			GRNDateTo:     optional(f.GRNDateTo),
			PONumber:      f.PONumber,
		},
		Items: lines,
	}, nil
}

// Patch is the full header patch used when an existing invoice is saved
// again. Cleared GRN dates become NULL.
func (v Invoice) Patch() invoice.Patch {
	h := v.Header
	return invoice.Patch{
		invoice.ColumnDate:          h.Date,
		invoice.ColumnCustomerName:  h.CustomerName,
		invoice.ColumnTotalAmount:   h.TotalAmount,
		invoice.ColumnGSTPercentage: h.GSTPercentage,
		invoice.ColumnPaymentMethod: h.PaymentMethod,
		invoice.ColumnGRNDateFrom:   h.GRNDateFrom,
		invoice.ColumnGRNDateTo:     h.GRNDateTo,
		invoice.ColumnPONumber:      h.PONumber,
	}
}

// GSTAmount is the tax on total at percentage, rounded to paise.
func GSTAmount(total, percentage float64) float64 {
	return decimal.NewFromFloat(total).
		Mul(decimal.NewFromFloat(percentage)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
