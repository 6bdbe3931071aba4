package staff

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Staff struct {
	ID        string
	Code      string
	FullName  string
	Email     *string
	Phone     *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PayType string

const (
	PayTypeSalaried PayType = "salaried"
	PayTypeHourly   PayType = "hourly"
)

// JobHistoryEntry records a position assignment. The entry with the most
// recent StartDate is the staff member's current job.
type JobHistoryEntry struct {
	ID                 string
	StaffID            string
	Position           string
	Department         string
	PayType            PayType
	BaseSalary         decimal.Decimal
	HourlyRate         decimal.Decimal
	StandardDailyHours decimal.Decimal
	StartDate          time.Time
	CreatedAt          time.Time
}

// CurrentJob returns the most recent entry by StartDate, or false when the
// history is empty.
func CurrentJob(history []JobHistoryEntry) (JobHistoryEntry, bool) {
	if len(history) == 0 {
		return JobHistoryEntry{}, false
	}
	sorted := make([]JobHistoryEntry, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	return sorted[0], true
}
