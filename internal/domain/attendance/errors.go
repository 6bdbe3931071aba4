package attendance

import "errors"

// Structural errors abort the whole import call before any row is processed.
// Row-level problems are never Go errors; they travel as RowError values in
// the analysis result.
var (
	ErrEmptyInput             = errors.New("import input is empty")
	ErrMissingRequiredColumns = errors.New("import input is missing required columns staffid and date")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyProcessed   = errors.New("overtime decision has already been made for this record")
	ErrNotProcessed       = errors.New("attendance record has no overtime decision to revert")
	ErrMissingCheckOut    = errors.New("attendance record has no check-out time")
)
