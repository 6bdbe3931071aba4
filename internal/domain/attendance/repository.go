package attendance

import "context"

type AttendanceRepository interface {
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetByStaffAndDate looks a record up by its natural key. It returns
	// (nil, nil) when no record exists: the natural key may only answer
	// "does a conflict exist", never silently target an update.
	GetByStaffAndDate(ctx context.Context, staffID, date string) (*AttendanceRecord, error)

	// Create inserts under a system-generated identifier. It never upserts
	// by the natural key.
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// UpdateTimes overwrites the fixed comparison field set of an existing
	// record.
	UpdateTimes(ctx context.Context, id string, patch TimePatch) error

	ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]AttendanceRecord, error)

	// ListPendingWithCheckOut returns records eligible for overtime
	// classification: check-out present, decision still pending.
	ListPendingWithCheckOut(ctx context.Context, filter CandidateFilter) ([]AttendanceRecord, error)

	// Decide atomically records an overtime decision; decided_at is
	// assigned by the store.
	Decide(ctx context.Context, id string, status OvertimeStatus, approvedMinutes int) error

	// RevertDecision clears the decision, making the record re-eligible.
	RevertDecision(ctx context.Context, id string) error
}
