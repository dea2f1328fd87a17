package testutil

import (
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/google/uuid"
)

// Staff options
type StaffOption func(*domain.StaffMember)

func WithSkill(s domain.Skill) StaffOption {
	return func(m *domain.StaffMember) {
		m.Skill = s
	}
}

func WithInactive() StaffOption {
	return func(m *domain.StaffMember) {
		m.Active = false
	}
}

func NewTestStaff(name string, opts ...StaffOption) *domain.StaffMember {
	now := Now()
	m := &domain.StaffMember{
		ID:        uuid.New().String(),
		Name:      name,
		Skill:     domain.SkillDeveloper,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WorkItem options
type WorkItemOption func(*domain.WorkItem)

func WithRequiredSkill(s domain.Skill) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Skill = s
	}
}

func WithEffort(hours int) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.EffortHours = hours
	}
}

func WithDueDate(d time.Time) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.DueDate = &d
	}
}

func WithClient(c string) WorkItemOption {
	return func(w *domain.WorkItem) {
		w.Client = c
	}
}

func NewTestWorkItem(title string, opts ...WorkItemOption) *domain.WorkItem {
	now := Now()
	w := &domain.WorkItem{
		ID:          uuid.New().String(),
		Title:       title,
		Client:      "acme",
		Skill:       domain.SkillDeveloper,
		EffortHours: 8,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewTestAbsence builds an absence for the given staff member and date.
func NewTestAbsence(staffID string, date time.Time) *domain.Absence {
	return &domain.Absence{
		ID:        uuid.New().String(),
		StaffID:   staffID,
		Date:      date,
		CreatedAt: Now(),
	}
}

// Now returns the current UTC time truncated to whole seconds, matching the
// precision of persisted RFC3339 timestamps so round-trips compare equal.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Monday returns a fixed Monday used as "today" in scheduling tests.
func Monday() time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) // Monday
}
