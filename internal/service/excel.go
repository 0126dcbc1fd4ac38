package service

import (
	"fmt"

	"erp/backend/internal/entity"

	"github.com/xuri/excelize/v2"
)

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func newBook(sheet string, headers ...any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeRow(f, sheet, 1, headers...); err != nil {
		f.Close()
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(headers), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}

	return f, nil
}

func save(f *excelize.File, fileName string) error {
	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// ExportWorkersExcel writes the worker register to fileName.
func ExportWorkersExcel(workers []entity.Worker, fileName string) error {
	sheet := "Workers"
	f, err := newBook(sheet, "ID", "First Name", "Last Name", "Role", "Joining Date",
		"Contact Number", "Address", "Salary", "Salary Frequency", "Previous Experience")
	if err != nil {
		return err
	}
	defer f.Close()

	for i, w := range workers {
		var salary any
		if w.SalaryAmount != nil {
			salary = *w.SalaryAmount
		}
		if err = writeRow(f, sheet, i+2, w.ID, w.FirstName, w.LastName, w.Role, w.JoiningDate,
			w.ContactNumber, w.Address, salary, w.SalaryFrequency, w.PreviousExperience); err != nil {
			return err
		}
	}

	return save(f, fileName)
}

// ExportInvoiceExcel writes one invoice: header block, line items, then
// the total and GST rows.
func ExportInvoiceExcel(header entity.InvoiceHeader, items []entity.InvoiceLineItem, gst float64, fileName string) error {
	sheet := "Invoice"
	f, err := newBook(sheet, "Invoice No", header.InvoiceNo)
	if err != nil {
		return err
	}
	defer f.Close()

	rows := [][]any{
		{"Date", header.Date},
		{"Customer", header.CustomerName},
		{"PO Number", header.PONumber},
		{"Payment Method", header.PaymentMethod},
		{"GRN From", deref(header.GRNDateFrom)},
		{"GRN To", deref(header.GRNDateTo)},
		{},
		{"Line", "Description", "Part No", "HSN/SAC", "Quantity", "Rate", "Amount"},
	}
	for _, item := range items {
		rows = append(rows, []any{item.LineNo, item.ItemDescription, item.PartNo, item.HSNCode,
			item.Quantity, item.Rate, item.Amount})
	}
	rows = append(rows,
		[]any{},
		[]any{"", "", "", "", "", "Total", header.TotalAmount},
		[]any{"", "", "", "", "", fmt.Sprintf("GST %.2f%%", header.GSTPercentage), gst},
		[]any{"", "", "", "", "", "Grand Total", header.TotalAmount + gst},
	)

	for i, row := range rows {
		if err = writeRow(f, sheet, i+2, row...); err != nil {
			return err
		}
	}

	return save(f, fileName)
}

// ExportOvertimeExcel lists overtime entries with the worker names
// looked up in names.
func ExportOvertimeExcel(entries []entity.Overtime, names map[int64]string, fileName string) error {
	sheet := "Overtime"
	f, err := newBook(sheet, "Date", "Worker", "Hours", "Rate", "Amount")
	if err != nil {
		return err
	}
	defer f.Close()

	var hours, amount float64
	for i, o := range entries {
		if err = writeRow(f, sheet, i+2, o.Date, names[o.WorkerID], o.OTHours, o.OTRate, o.OTAmount); err != nil {
			return err
		}
		hours += o.OTHours
		amount += o.OTAmount
	}
	if err = writeRow(f, sheet, len(entries)+2, "Total", "", hours, "", amount); err != nil {
		return err
	}

	return save(f, fileName)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
