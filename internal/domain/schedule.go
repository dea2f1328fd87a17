package domain

import "time"

// ScheduleEntry is one line of the generated plan: a work item assigned to a
// staff member over an inclusive start/end date range. At most one active
// entry exists per work item.
type ScheduleEntry struct {
	ID         string
	WorkItemID string
	StaffID    string

	StartDate time.Time
	EndDate   time.Time
	Hours     int

	Overdue     bool
	DaysOverdue int

	Completed        bool
	CompletedAt      *time.Time
	CompletionStatus CompletionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClassifyCompletion returns on_time when the completion date does not exceed
// the due date, late otherwise. With no due date every completion is on time.
func ClassifyCompletion(completedAt time.Time, dueDate *time.Time) CompletionStatus {
	if dueDate != nil && completedAt.After(*dueDate) {
		return CompletionLate
	}
	return CompletionOnTime
}
