package schedule

import "time"

type Kind string

const (
	KindWork   Kind = "work"
	KindDayOff Kind = "day_off"
)

// ScheduleEntry is the planned shift for one staff member on one day.
// At most one entry exists per (StaffID, Date); the date is the canonical
// YYYY-MM-DD business-day string, not a timestamp.
type ScheduleEntry struct {
	ID            string
	StaffID       string
	Date          string
	Kind          Kind
	StartTime     *string // HH:mm wall clock, work entries only
	EndTime       *string
	BreakIncluded bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PublicHoliday struct {
	ID        string
	Date      string
	Name      string
	CreatedAt time.Time
}
