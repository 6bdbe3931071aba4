package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type LeaveRequest struct {
	ID        string
	StaffID   string
	LeaveType string
	StartDate string
	EndDate   string
	TotalDays float64
	Status    Status
	Reason    *string
	DecidedBy *string
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the request spans the given YYYY-MM-DD date.
// Canonical date strings order lexicographically, so plain string
// comparison is correct here.
func (l LeaveRequest) Covers(date string) bool {
	return l.StartDate <= date && date <= l.EndDate
}
