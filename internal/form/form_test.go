package form

import (
	"testing"

	"erp/backend/internal/entity"

	"github.com/pkg/errors"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FieldError", err)
	}
	return fe.Field
}

func TestWorkerForm(t *testing.T) {
	valid := WorkerForm{
		FirstName:       " Ravi ",
		Role:            "Painter",
		JoiningDate:     "2024-01-10",
		SalaryAmount:    "15000.50",
		SalaryFrequency: "Monthly",
	}

	request, err := valid.ToCreateRequest()
	if err != nil {
		t.Fatalf("valid form: %v", err)
	}
	if request.FirstName != "Ravi" || request.SalaryAmount == nil || *request.SalaryAmount != 15000.5 {
		t.Fatalf("request = %+v", request)
	}

	noSalary := valid
	noSalary.SalaryAmount = "  "
	if request, err = noSalary.ToCreateRequest(); err != nil || request.SalaryAmount != nil {
		t.Fatalf("empty salary: %+v, %v", request, err)
	}

	tests := []struct {
		name  string
		edit  func(*WorkerForm)
		field string
	}{
		{"first name", func(f *WorkerForm) { f.FirstName = " " }, "first_name"},
		{"role", func(f *WorkerForm) { f.Role = "" }, "role"},
		{"joining date", func(f *WorkerForm) { f.JoiningDate = "10/01/2024" }, "joining_date"},
		{"salary", func(f *WorkerForm) { f.SalaryAmount = "lots" }, "salary_amount"},
		{"frequency", func(f *WorkerForm) { f.SalaryFrequency = "Yearly" }, "salary_frequency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.edit(&f)
			_, err := f.ToCreateRequest()
			if got := fieldOf(t, err); got != tt.field {
				t.Fatalf("field = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestAttendanceForm(t *testing.T) {
	f := AttendanceForm{
		Date: "2024-03-01",
		Rows: []AttendanceRow{
			{WorkerID: 1, Present: true, PunchInTime: "09:00", PunchOutTime: "18:15"},
			{WorkerID: 2, Present: false, PunchInTime: "garbage"},
		},
	}

	requests, err := f.ToSaveRequests()
	if err != nil {
		t.Fatalf("valid form: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("requests = %d", len(requests))
	}
	if requests[0].Status != entity.StatusPresent || requests[0].Date.String() != "2024-03-01" {
		t.Fatalf("present row = %+v", requests[0])
	}
	if requests[1].Status != entity.StatusAbsent || requests[1].PunchInTime != "" {
		t.Fatalf("absent row = %+v", requests[1])
	}

	for _, bad := range []string{"9:00", "24:00", "12:60", "noon"} {
		f.Rows[0].PunchInTime = bad
		_, err = f.ToSaveRequests()
		if got := fieldOf(t, err); got != "rows[0].punch_in_time" {
			t.Fatalf("time %q: field = %q", bad, got)
		}
	}
}

func TestOvertimeForm(t *testing.T) {
	f := OvertimeForm{WorkerID: 3, Date: "2024-03-01", Hours: "2.5", Rate: "120.10"}

	request, err := f.ToCreateRequest()
	if err != nil {
		t.Fatalf("valid form: %v", err)
	}
	if request.OTAmount != 300.25 {
		t.Fatalf("amount = %v, want 300.25", request.OTAmount)
	}

	tests := []struct {
		name  string
		edit  func(*OvertimeForm)
		field string
	}{
		{"zero hours", func(f *OvertimeForm) { f.Hours = "0" }, "ot_hours"},
		{"negative rate", func(f *OvertimeForm) { f.Rate = "-1" }, "ot_rate"},
		{"text hours", func(f *OvertimeForm) { f.Hours = "two" }, "ot_hours"},
		{"no worker", func(f *OvertimeForm) { f.WorkerID = 0 }, "worker_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := f
			tt.edit(&g)
			_, err := g.ToCreateRequest()
			if got := fieldOf(t, err); got != tt.field {
				t.Fatalf("field = %q, want %q", got, tt.field)
			}
		})
	}

	zeroRate := f
	zeroRate.Rate = "0"
	if _, err = zeroRate.ToCreateRequest(); err != nil {
		t.Fatalf("zero rate: %v", err)
	}
}

func TestRangeForm(t *testing.T) {
	filter, err := RangeForm{From: "2024-03-01", To: "2024-03-31"}.ToFilter()
	if err != nil {
		t.Fatalf("valid range: %v", err)
	}
	if filter.From.String() != "2024-03-01" || filter.To.String() != "2024-03-31" {
		t.Fatalf("filter = %v..%v", filter.From, filter.To)
	}

	_, err = RangeForm{From: "2024-03-31", To: "2024-03-01"}.ToFilter()
	if got := fieldOf(t, err); got != "to" {
		t.Fatalf("field = %q", got)
	}
}

func TestDescriptionForm(t *testing.T) {
	request, err := DescriptionForm{Description: " Anodizing ", Rate: "abc"}.ToCreateRequest()
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if request.Description != "Anodizing" || request.Rate != "abc" {
		t.Fatalf("request = %+v", request)
	}

	_, err = DescriptionForm{}.ToCreateRequest()
	if got := fieldOf(t, err); got != "description" {
		t.Fatalf("field = %q", got)
	}
}

func TestInvoiceForm(t *testing.T) {
	f := InvoiceForm{
		InvoiceNo:     "INV006",
		Date:          "2024-03-01",
		CustomerName:  "Acme Auto",
		GSTPercentage: "18",
		GRNDateFrom:   "2024-02-01",
		Items: []LineItemForm{
			{LineNo: 1, ItemDescription: "Paint Coating", Quantity: "3", Rate: "100.10"},
			{LineNo: 2, ItemDescription: "Powder Coating", Quantity: "0.5", Rate: "120"},
		},
	}

	v, err := f.Validate()
	if err != nil {
		t.Fatalf("valid form: %v", err)
	}
	if v.Header.TotalAmount != 360.3 {
		t.Fatalf("total = %v, want 360.3", v.Header.TotalAmount)
	}
	if v.Items[0].Amount != 300.3 || v.Items[1].InvoiceNo != "INV006" {
		t.Fatalf("items = %+v", v.Items)
	}
	if v.Header.GRNDateFrom == nil || v.Header.GRNDateTo != nil {
		t.Fatalf("grn dates = %v, %v", v.Header.GRNDateFrom, v.Header.GRNDateTo)
	}
	if p := v.Patch(); len(p) != 8 {
		t.Fatalf("patch has %d columns", len(p))
	}
	if got := GSTAmount(v.Header.TotalAmount, v.Header.GSTPercentage); got != 64.85 {
		t.Fatalf("gst = %v, want 64.85", got)
	}

	tests := []struct {
		name  string
		edit  func(*InvoiceForm)
		field string
	}{
		{"no number", func(f *InvoiceForm) { f.InvoiceNo = "" }, "invoice_no"},
		{"bad grn", func(f *InvoiceForm) { f.GRNDateTo = "soon" }, "grn_date_to"},
		{"no items", func(f *InvoiceForm) { f.Items = nil }, "items"},
		{"repeated line", func(f *InvoiceForm) { f.Items[1].LineNo = 1 }, "items"},
		{"bad quantity", func(f *InvoiceForm) { f.Items[1].Quantity = "x" }, "items[1].quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := f
			g.Items = append([]LineItemForm(nil), f.Items...)
			tt.edit(&g)
			_, err := g.Validate()
			if got := fieldOf(t, err); got != tt.field {
				t.Fatalf("field = %q, want %q", got, tt.field)
			}
		})
	}
}
