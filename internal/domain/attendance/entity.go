package attendance

import "time"

type OvertimeStatus string

const (
	OvertimePending  OvertimeStatus = "pending"
	OvertimeApproved OvertimeStatus = "approved"
	OvertimeRejected OvertimeStatus = "rejected"
)

// AttendanceRecord is one staff member's clock data for one business day.
// Date is the canonical YYYY-MM-DD string; the clock fields are absolute
// instants (UTC) produced by the time normalizer. At most one record exists
// per (StaffID, Date).
type AttendanceRecord struct {
	ID         string
	StaffID    string
	Date       string
	CheckIn    *time.Time
	CheckOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time

	OvertimeStatus          OvertimeStatus
	ApprovedOvertimeMinutes int
	Processed               bool
	// DecidedAt is assigned by the record store when a decision commits;
	// callers never pass a value for it.
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
