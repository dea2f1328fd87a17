package scheduler

import "time"

// DefaultDailyCapacityHours is the fixed number of hours consumed per working
// day when walking an allocation.
const DefaultDailyCapacityHours = 8

// Allocation is the result of walking one work item across the calendar for
// its assigned staff member.
type Allocation struct {
	Start time.Time
	End   time.Time

	// NextAvailable is the day immediately after the last consumed working
	// day. The caller uses it as the earliest eligible date for the next
	// work item assigned to the same staff member.
	NextAvailable time.Time
}

// WalkAllocation advances day by day starting at from, skipping non-working
// days without consuming effort, and consumes dailyCapacity hours on each
// working day until the effort is exhausted.
//
// Partial-day policy: a final day is consumed whole even when the remaining
// effort is less than the daily capacity (remaining may go negative on the
// last step). There are no fractional-day end dates.
func WalkAllocation(cal *Calendar, staffID string, effortHours int, from time.Time, dailyCapacity int) Allocation {
	if dailyCapacity <= 0 {
		dailyCapacity = DefaultDailyCapacityHours
	}

	day := DateOnly(from)
	remaining := effortHours
	var alloc Allocation
	first := true

	for remaining > 0 {
		if !cal.IsWorkingDay(staffID, day) {
			day = day.AddDate(0, 0, 1)
			continue
		}
		remaining -= dailyCapacity
		if first {
			alloc.Start = day
			first = false
		}
		alloc.End = day
		day = day.AddDate(0, 0, 1)
	}

	alloc.NextAvailable = day
	return alloc
}
