package scheduler

import (
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
)

const dateLayout = "2006-01-02"

// Calendar answers working-day questions for staff members. Weekends are
// non-working for everyone; absences apply per staff member. Persisted
// absences and simulation blackouts are merged into one set before the
// calendar is built, so lookups never distinguish the two sources.
type Calendar struct {
	absences map[absenceKey]struct{}
}

type absenceKey struct {
	staffID string
	date    string
}

// NewCalendar builds a calendar from the merged absence set. Duplicate
// absences for the same staff/date collapse into one entry.
func NewCalendar(absences []domain.Absence) *Calendar {
	c := &Calendar{absences: make(map[absenceKey]struct{}, len(absences))}
	for _, a := range absences {
		c.absences[absenceKey{staffID: a.StaffID, date: DateOnly(a.Date).Format(dateLayout)}] = struct{}{}
	}
	return c
}

// IsWorkingDay reports whether day is a working day for the given staff
// member: not a weekend and not covered by an absence.
func (c *Calendar) IsWorkingDay(staffID string, day time.Time) bool {
	wd := day.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, absent := c.absences[absenceKey{staffID: staffID, date: DateOnly(day).Format(dateLayout)}]
	return !absent
}

// NextWorkingDay returns the first working day at or after from.
func (c *Calendar) NextWorkingDay(staffID string, from time.Time) time.Time {
	day := DateOnly(from)
	for !c.IsWorkingDay(staffID, day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// AddWorkingDays advances from by exactly n working days. Weekends and
// absences do not count toward n. With n <= 0 the date is returned unchanged.
func (c *Calendar) AddWorkingDays(staffID string, from time.Time, n int) time.Time {
	day := DateOnly(from)
	for counted := 0; counted < n; {
		day = day.AddDate(0, 0, 1)
		if c.IsWorkingDay(staffID, day) {
			counted++
		}
	}
	return day
}

// DateOnly truncates a timestamp to midnight UTC so date arithmetic and
// map keys never depend on the time-of-day component.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
