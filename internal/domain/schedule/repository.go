package schedule

import "context"

type ScheduleRepository interface {
	GetByStaffAndDate(ctx context.Context, staffID, date string) (*ScheduleEntry, error)
	ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]ScheduleEntry, error)

	// Upsert inserts or patches by the known (staff_id, date) key.
	Upsert(ctx context.Context, entry ScheduleEntry) (ScheduleEntry, error)

	// DeleteCascade removes the entry and any attendance record for the same
	// (staff_id, date) in one atomic batch.
	DeleteCascade(ctx context.Context, staffID, date string) error
}

type HolidayRepository interface {
	Create(ctx context.Context, holiday PublicHoliday) (PublicHoliday, error)
	Delete(ctx context.Context, id string) error
	ListByRange(ctx context.Context, from, to string) ([]PublicHoliday, error)
}
