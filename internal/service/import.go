package service

import (
	"log"
	"strings"

	"erp/backend/internal/repository/sqlite/description"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ReadDescriptionsFromExcel reads catalog rows from the first sheet:
// description, customer part no, SAC code, rate, PO no. Rows that are
// incomplete, carry a bad rate, or repeat a description (in the file or
// in existing) are reported by their 1-based row number and skipped.
// Blank rows are ignored.
func ReadDescriptionsFromExcel(filePath string, existing map[string]struct{}) ([]description.CreateRequest, []int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("File close error: %v", closeErr)
		}
	}()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, err
	}

	var list []description.CreateRequest
	var skipped []int
	local := make(map[string]int)

	for i, row := range rows {
		rowNumber := i + 1
		if i == 0 {
			continue
		}

		cells := make([]string, 5)
		for j := range cells {
			if j < len(row) {
				cells[j] = strings.TrimSpace(norm.NFC.String(row[j]))
			}
		}
		text, rate := cells[0], cells[3]

		if strings.Join(cells, "") == "" {
			continue
		}
		if text == "" || rate == "" {
			skipped = append(skipped, rowNumber)
			continue
		}
		if _, err := description.ParseRate(rate); err != nil {
			skipped = append(skipped, rowNumber)
			continue
		}
		if _, ok := existing[text]; ok {
			skipped = append(skipped, rowNumber)
			continue
		}
		if _, ok := local[text]; ok {
			skipped = append(skipped, rowNumber)
			continue
		}
		local[text] = rowNumber

		list = append(list, description.CreateRequest{
			Description:    text,
			CustomerPartNo: cells[1],
			SACCode:        cells[2],
			Rate:           rate,
			PONo:           cells[4],
		})
	}

	return list, skipped, nil
}
