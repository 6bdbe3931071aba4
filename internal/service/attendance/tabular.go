package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// Recognized header names, matched case-insensitively.
const (
	colDocID      = "attendancedocid"
	colStaffID    = "staffid"
	colStaffName  = "staffname"
	colDate       = "date"
	colCheckIn    = "checkintime"
	colCheckOut   = "checkouttime"
	colBreakStart = "breakstarttime"
	colBreakEnd   = "breakendtime"
)

// parseTabular turns raw CSV text into import rows. Structural problems
// (empty input, missing required columns) fail the whole call; nothing is
// validated per row here. Row numbers count from the top of the file, the
// header being row 1.
func parseTabular(text string) ([]attendance.ImportRow, error) {
	if strings.TrimSpace(text) == "" {
		return nil, attendance.ErrEmptyInput
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed tabular input: %w", err)
	}
	if len(records) == 0 {
		return nil, attendance.ErrEmptyInput
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index[colStaffID]; !ok {
		return nil, attendance.ErrMissingRequiredColumns
	}
	if _, ok := index[colDate]; !ok {
		return nil, attendance.ErrMissingRequiredColumns
	}

	cell := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	rows := make([]attendance.ImportRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, attendance.ImportRow{
			RowNumber:      i + 2,
			DocID:          cell(record, colDocID),
			StaffID:        cell(record, colStaffID),
			StaffName:      cell(record, colStaffName),
			Date:           cell(record, colDate),
			CheckInTime:    cell(record, colCheckIn),
			CheckOutTime:   cell(record, colCheckOut),
			BreakStartTime: cell(record, colBreakStart),
			BreakEndTime:   cell(record, colBreakEnd),
		})
	}
	if len(rows) == 0 {
		return nil, attendance.ErrEmptyInput
	}

	return rows, nil
}

// XLSXToCSV converts the first sheet of an uploaded workbook into the CSV
// text form the engine consumes, so analyze and apply still operate on one
// identical tabular payload.
func XLSXToCSV(r io.Reader) (string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return "", attendance.ErrEmptyInput
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	var sb strings.Builder
	writer := csv.NewWriter(&sb)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to rewrite sheet row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
