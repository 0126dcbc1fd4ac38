package service

import (
	"bytes"
	"fmt"

	"erp/backend/internal/entity"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// Company is the issuer block printed on invoices.
type Company struct {
	Name    string
	Address string
	Phone   string
	GSTIN   string
}

// ExportInvoicePDF renders a tax invoice with a QR code carrying
// "invoice_no|date|grand total".
func ExportInvoicePDF(company Company, header entity.InvoiceHeader, items []entity.InvoiceLineItem, gst float64, fileName string) error {
	grandTotal := header.TotalAmount + gst

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 8, company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	if company.Address != "" {
		pdf.CellFormat(0, 5, company.Address, "", 1, "C", false, 0, "")
	}
	if company.Phone != "" || company.GSTIN != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s   GSTIN: %s", company.Phone, company.GSTIN), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "TAX INVOICE", "TB", 1, "C", false, 0, "")
	pdf.Ln(2)

	qr, err := qrcode.Encode(fmt.Sprintf("%s|%s|%.2f", header.InvoiceNo, header.Date, grandTotal), qrcode.Medium, 256)
	if err != nil {
		return errors.Wrap(err, "encoding invoice qr code")
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("invoice-qr", opts, bytes.NewReader(qr))
	pdf.ImageOptions("invoice-qr", 168, pdf.GetY(), 28, 28, false, opts, 0, "")

	pdf.SetFont("Arial", "", 10)
	meta := [][2]string{
		{"Invoice No", header.InvoiceNo},
		{"Date", header.Date},
		{"Customer", header.CustomerName},
		{"PO Number", header.PONumber},
		{"Payment", header.PaymentMethod},
		{"GRN Period", fmt.Sprintf("%s - %s", deref(header.GRNDateFrom), deref(header.GRNDateTo))},
	}
	for _, m := range meta {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(32, 5, m[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 5, m[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	widths := []float64{12, 66, 26, 22, 18, 20, 22}
	headers := []string{"No", "Description", "Part No", "HSN/SAC", "Qty", "Rate", "Amount"}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, item := range items {
		cells := []string{
			fmt.Sprint(item.LineNo),
			item.ItemDescription,
			item.PartNo,
			item.HSNCode,
			fmt.Sprintf("%.2f", item.Quantity),
			fmt.Sprintf("%.2f", item.Rate),
			fmt.Sprintf("%.2f", item.Amount),
		}
		for i, c := range cells {
			align := "L"
			if i >= 4 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	labelWidth := widths[0] + widths[1] + widths[2] + widths[3] + widths[4] + widths[5]
	totals := [][2]string{
		{"Total", fmt.Sprintf("%.2f", header.TotalAmount)},
		{fmt.Sprintf("GST %.2f%%", header.GSTPercentage), fmt.Sprintf("%.2f", gst)},
		{"Grand Total", fmt.Sprintf("%.2f", grandTotal)},
	}
	pdf.SetFont("Arial", "B", 9)
	for _, t := range totals {
		pdf.CellFormat(labelWidth, 6, t[0], "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[6], 6, t[1], "1", 1, "R", false, 0, "")
	}

	pdf.Ln(14)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "For "+company.Name, "", 1, "R", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(0, 5, "Authorised Signatory", "", 1, "R", false, 0, "")

	if err = pdf.OutputFileAndClose(fileName); err != nil {
		return errors.Wrap(err, "writing invoice pdf")
	}

	return nil
}
