package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"erp/backend/internal/entity"

	"github.com/xuri/excelize/v2"
)

func sampleInvoice() (entity.InvoiceHeader, []entity.InvoiceLineItem) {
	from := "2024-02-01"
	header := entity.InvoiceHeader{
		InvoiceNo: "INV006", Date: "2024-03-01", CustomerName: "Acme Auto",
		TotalAmount: 360.3, GSTPercentage: 18, GRNDateFrom: &from, PONumber: "PO-77",
	}
	items := []entity.InvoiceLineItem{
		{InvoiceNo: "INV006", LineNo: 1, ItemDescription: "Paint Coating", Quantity: 3, Rate: 100.1, Amount: 300.3},
		{InvoiceNo: "INV006", LineNo: 2, ItemDescription: "Powder Coating", Quantity: 0.5, Rate: 120, Amount: 60},
	}
	return header, items
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing png: %v", err)
	}
}

func TestExportInvoiceExcel(t *testing.T) {
	header, items := sampleInvoice()
	fileName := filepath.Join(t.TempDir(), "invoice.xlsx")

	if err := ExportInvoiceExcel(header, items, 64.85, fileName); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenFile(fileName)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Invoice", "B1"); v != "INV006" {
		t.Fatalf("B1 = %q", v)
	}
	if v, _ := f.GetCellValue("Invoice", "B10"); v != "Paint Coating" {
		t.Fatalf("B10 = %q", v)
	}
}

func TestExportWorkersAndOvertimeExcel(t *testing.T) {
	dir := t.TempDir()
	salary := 900.0

	workers := []entity.Worker{{ID: 1, FirstName: "Ravi", Role: "Painter", SalaryAmount: &salary}, {ID: 2, FirstName: "Anil"}}
	if err := ExportWorkersExcel(workers, filepath.Join(dir, "workers.xlsx")); err != nil {
		t.Fatalf("workers: %v", err)
	}

	entries := []entity.Overtime{{WorkerID: 1, Date: "2024-03-01", OTHours: 2, OTRate: 50, OTAmount: 100}}
	name := filepath.Join(dir, "ot.xlsx")
	if err := ExportOvertimeExcel(entries, map[int64]string{1: "Ravi"}, name); err != nil {
		t.Fatalf("overtime: %v", err)
	}

	f, err := excelize.OpenFile(name)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	if v, _ := f.GetCellValue("Overtime", "B2"); v != "Ravi" {
		t.Fatalf("B2 = %q", v)
	}
	if v, _ := f.GetCellValue("Overtime", "A3"); v != "Total" {
		t.Fatalf("A3 = %q", v)
	}
}

func TestReadDescriptionsFromExcel(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "catalog.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"Description", "Customer Part No", "SAC Code", "Rate", "PO No"},
		{"Anodizing", "AN-1", "998876", "90", "PO9"},
		{"Paint Coating", "PC-001", "998873", "100", ""},
		{"Galvanizing", "", "", "abc", ""},
		{"", "", "", "", ""},
		{"Anodizing", "AN-2", "", "95", ""},
		{"Blasting", "", "", "", ""},
		{"Chroming", "", "", "NaN", ""},
		{"Nickel Plating", "", "", "Inf", ""},
		{"Zinc Plating", "", "", "0x1p3", ""},
	}
	for i, row := range rows {
		if err := writeRow(f, "Sheet1", i+1, row...); err != nil {
			t.Fatalf("writing row: %v", err)
		}
	}
	if err := f.SaveAs(fileName); err != nil {
		t.Fatalf("saving: %v", err)
	}

	list, skipped, err := ReadDescriptionsFromExcel(fileName, map[string]struct{}{"Paint Coating": {}})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(list) != 1 || list[0].Description != "Anodizing" || list[0].Rate != "90" {
		t.Fatalf("list = %+v", list)
	}

	want := []int{3, 4, 6, 7, 8, 9, 10}
	if len(skipped) != len(want) {
		t.Fatalf("skipped = %v, want %v", skipped, want)
	}
	for i := range want {
		if skipped[i] != want[i] {
			t.Fatalf("skipped = %v, want %v", skipped, want)
		}
	}
}

func TestExportInvoicePDF(t *testing.T) {
	header, items := sampleInvoice()
	fileName := filepath.Join(t.TempDir(), "invoice.pdf")

	company := Company{Name: "Shree Coatings", Address: "Plot 4, MIDC", GSTIN: "27ABCDE1234F1Z5"}
	if err := ExportInvoicePDF(company, header, items, 64.85, fileName); err != nil {
		t.Fatalf("export: %v", err)
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatal("output is not a pdf")
	}
}

func TestUpload(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "photo.png")
	writePNG(t, src, 4, 4)

	path, err := Upload(src, filepath.Join(dir, "media"), "photos", "photo")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "photo_") || filepath.Ext(path) != ".png" {
		t.Fatalf("path = %q", path)
	}
	if _, err = os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}

	if path, err = Upload("", dir, "photos", "photo"); err != nil || path != "" {
		t.Fatalf("empty upload = %q, %v", path, err)
	}

	text := filepath.Join(dir, "notes.txt")
	if err = os.WriteFile(text, []byte("hello"), 0o644); err != nil {
		t.Fatalf("writing text: %v", err)
	}
	if _, err = Upload(text, dir, "photos", "photo"); err == nil {
		t.Fatal("expected content type error")
	}
}

func TestWriteFileRemovesPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	src := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("disk unplugged")))

	if err := writeFile(path, src); err == nil {
		t.Fatal("expected copy error")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("partial file left behind: %v", err)
	}

	if err := writeFile(path, strings.NewReader("whole")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if b, err := os.ReadFile(path); err != nil || string(b) != "whole" {
		t.Fatalf("content = %q, %v", b, err)
	}
}

func TestExportFailures(t *testing.T) {
	if _, err := newBook("Q1/Q2", "A"); err == nil {
		t.Fatal("expected invalid sheet name error")
	}

	missing := filepath.Join(t.TempDir(), "missing", "workers.xlsx")
	if err := ExportWorkersExcel(nil, missing); err == nil {
		t.Fatal("expected save error")
	}
	if _, err := os.Stat(missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("stat = %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "wide.png")
	writePNG(t, src, 400, 200)

	img, err := Thumbnail(src, 100, 100)
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("bounds = %v", b)
	}

	small, err := Thumbnail(src, 800, 800)
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	if b := small.Bounds(); b.Dx() != 400 {
		t.Fatalf("small image resized: %v", b)
	}

	dst := filepath.Join(dir, "thumb.png")
	if err = SaveThumbnail(src, dst, 50, 50); err != nil {
		t.Fatalf("save: %v", err)
	}
}
