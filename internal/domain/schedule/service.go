package schedule

import "context"

type ScheduleService interface {
	Upsert(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]ScheduleResponse, error)

	// Delete removes a schedule entry together with any attendance recorded
	// for that day, atomically.
	Delete(ctx context.Context, staffID, date string) error

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (PublicHoliday, error)
	DeleteHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context, from, to string) ([]PublicHoliday, error)
}
