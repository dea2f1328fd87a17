package service

import (
	"context"
	"time"

	"github.com/alexanderramin/crewplan/internal/contract"
	"github.com/alexanderramin/crewplan/internal/domain"
)

type StaffService interface {
	Create(ctx context.Context, s *domain.StaffMember) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error)
	Update(ctx context.Context, s *domain.StaffMember) error
	Delete(ctx context.Context, id string) error
}

type WorkItemService interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
}

type AbsenceService interface {
	Add(ctx context.Context, staffID string, date time.Time) (*domain.Absence, error)
	List(ctx context.Context) ([]domain.Absence, error)
	ListByStaff(ctx context.Context, staffID string) ([]domain.Absence, error)
	Remove(ctx context.Context, staffID string, date time.Time) error
}

type PlanService interface {
	// Generate runs a real generation: compute, diff against the persisted
	// schedule, write version records, replace the schedule.
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error)

	// Simulate returns a candidate schedule under temporary overrides without
	// persisting anything.
	Simulate(ctx context.Context, req contract.SimulateRequest) (*contract.SimulateResponse, error)

	// Complete marks one work item's entry as finished and rewrites its end
	// date to the actual completion date.
	Complete(ctx context.Context, req contract.CompleteRequest) (*domain.ScheduleEntry, error)

	Schedule(ctx context.Context) ([]*domain.ScheduleEntry, error)
	History(ctx context.Context, limit int) ([]domain.VersionRecord, error)
	HistoryByWorkItem(ctx context.Context, workItemID string) ([]domain.VersionRecord, error)
}

type StatusService interface {
	// NeedsRegeneration reports whether any master changed after the last
	// schedule write. Callers use it as a gate before Generate.
	NeedsRegeneration(ctx context.Context) (bool, error)
}
