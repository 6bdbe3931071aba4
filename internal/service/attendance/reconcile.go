package attendance

import (
	"time"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/timeutil"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/validator"
)

// lookupResult is everything the classifier may know about the store's
// current state for one row. Resolving it is the only part of analysis that
// touches the record store; classification itself is a pure function of
// (row, lookupResult) so the apply phase can re-derive identical outcomes
// from identical text.
type lookupResult struct {
	// target is the record fetched by the row's explicit identifier.
	target *attendance.AttendanceRecord
	// idNotFound is set when the row carried an identifier but no record
	// has it.
	idNotFound bool
	// naturalHit is the record found by (staffID, date) for rows without an
	// identifier. A hit never becomes an update target; it only proves a
	// conflict exists.
	naturalHit *attendance.AttendanceRecord
}

// comparisonFields is the fixed set diffed between a stored record and an
// imported row.
var comparisonFields = []string{"check_in", "check_out", "break_start", "break_end"}

func errorRow(row attendance.ImportRow, message string) attendance.RowClassification {
	return attendance.RowClassification{
		RowNumber: row.RowNumber,
		Kind:      attendance.RowError,
		StaffID:   row.StaffID,
		StaffName: row.StaffName,
		Date:      row.Date,
		DocID:     row.DocID,
		Message:   message,
	}
}

// validateRow checks the row's own fields, before any store lookup.
// It returns a zero classification and true when the row is well-formed.
func validateRow(row attendance.ImportRow) (attendance.RowClassification, bool) {
	if validator.IsEmpty(row.StaffID) {
		return errorRow(row, "missing staff identifier"), false
	}
	if validator.IsEmpty(row.Date) {
		return errorRow(row, "missing date"), false
	}
	if _, ok := validator.IsValidDate(row.Date); !ok {
		return errorRow(row, "invalid date format, expected YYYY-MM-DD"), false
	}

	clocks := []struct {
		name  string
		value string
	}{
		{"checkintime", row.CheckInTime},
		{"checkouttime", row.CheckOutTime},
		{"breakstarttime", row.BreakStartTime},
		{"breakendtime", row.BreakEndTime},
	}
	for _, c := range clocks {
		if c.value != "" && !validator.IsValidClock(c.value) {
			return errorRow(row, "invalid "+c.name+" format, expected HH:mm or HH:mm:ss"), false
		}
	}

	return attendance.RowClassification{}, true
}

// buildPatch normalizes the row's optional time cells into absolute
// instants. Empty cells become nil.
func buildPatch(norm *timeutil.Normalizer, row attendance.ImportRow) attendance.TimePatch {
	return attendance.TimePatch{
		CheckIn:    norm.Clock(row.Date, row.CheckInTime),
		CheckOut:   norm.Clock(row.Date, row.CheckOutTime),
		BreakStart: norm.Clock(row.Date, row.BreakStartTime),
		BreakEnd:   norm.Clock(row.Date, row.BreakEndTime),
	}
}

func diffRecord(stored attendance.AttendanceRecord, patch attendance.TimePatch) []attendance.FieldDiff {
	from := []*time.Time{stored.CheckIn, stored.CheckOut, stored.BreakStart, stored.BreakEnd}
	to := []*time.Time{patch.CheckIn, patch.CheckOut, patch.BreakStart, patch.BreakEnd}

	var diffs []attendance.FieldDiff
	for i, field := range comparisonFields {
		if !timeutil.SameInstant(from[i], to[i]) {
			diffs = append(diffs, attendance.FieldDiff{
				Field: field,
				From:  from[i],
				To:    to[i],
			})
		}
	}
	return diffs
}

// classifyRow is the pure per-row decision. It never mutates anything and
// never aborts the batch: every outcome, including the error ones, is data.
func classifyRow(norm *timeutil.Normalizer, row attendance.ImportRow, lr lookupResult) attendance.RowClassification {
	if errRow, ok := validateRow(row); !ok {
		return errRow
	}

	patch := buildPatch(norm, row)

	if row.DocID != "" {
		if lr.idNotFound || lr.target == nil {
			return errorRow(row, "attendance identifier not found")
		}
		if lr.target.StaffID != row.StaffID || lr.target.Date != row.Date {
			// An identifier typo must never overwrite an unrelated
			// person's record.
			return errorRow(row, "identity mismatch: stored record belongs to a different staff member or date")
		}

		diffs := diffRecord(*lr.target, patch)
		if len(diffs) == 0 {
			return attendance.RowClassification{
				RowNumber: row.RowNumber,
				Kind:      attendance.RowNoChange,
				StaffID:   row.StaffID,
				StaffName: row.StaffName,
				Date:      row.Date,
				DocID:     row.DocID,
			}
		}
		return attendance.RowClassification{
			RowNumber: row.RowNumber,
			Kind:      attendance.RowUpdate,
			StaffID:   row.StaffID,
			StaffName: row.StaffName,
			Date:      row.Date,
			DocID:     row.DocID,
			TargetID:  lr.target.ID,
			Patch:     &patch,
			Diffs:     diffs,
		}
	}

	if lr.naturalHit != nil {
		return errorRow(row, "a record already exists for this staff member and date; supply attendancedocid to update it")
	}

	candidate := attendance.AttendanceRecord{
		StaffID:        row.StaffID,
		Date:           row.Date,
		CheckIn:        patch.CheckIn,
		CheckOut:       patch.CheckOut,
		BreakStart:     patch.BreakStart,
		BreakEnd:       patch.BreakEnd,
		OvertimeStatus: attendance.OvertimePending,
	}
	return attendance.RowClassification{
		RowNumber: row.RowNumber,
		Kind:      attendance.RowCreate,
		StaffID:   row.StaffID,
		StaffName: row.StaffName,
		Date:      row.Date,
		Candidate: &candidate,
	}
}
