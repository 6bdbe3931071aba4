package timeutil

import (
	"regexp"
	"time"
)

// All wall-clock input is interpreted in one fixed business timezone, never in
// the server's local zone. Stored instants are absolute (UTC); comparisons
// between a freshly parsed instant and a stored one must use time.Time.Equal.

var (
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(timezone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Normalizer{loc: loc}, nil
}

// Location returns the business timezone.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// Clock converts a (date, time) pair of business wall-clock strings into an
// absolute instant. Either string missing or malformed yields nil, not an
// error: time cells in an import are optional and bad values are reported at
// the row level, not here.
func (n *Normalizer) Clock(dateStr, timeStr string) *time.Time {
	if !dateRegex.MatchString(dateStr) || !clockRegex.MatchString(timeStr) {
		return nil
	}

	layout := "2006-01-02 15:04"
	if len(timeStr) == 8 {
		layout = "2006-01-02 15:04:05"
	}

	t, err := time.ParseInLocation(layout, dateStr+" "+timeStr, n.loc)
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}

// Date validates and parses a canonical YYYY-MM-DD date string as midnight in
// the business timezone.
func (n *Normalizer) Date(dateStr string) (time.Time, bool) {
	if !dateRegex.MatchString(dateStr) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", dateStr, n.loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SameInstant compares two nullable instants as absolutes.
func SameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
