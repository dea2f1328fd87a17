package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
)

type StaffRepo interface {
	Create(ctx context.Context, s *domain.StaffMember) error
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error)
	Update(ctx context.Context, s *domain.StaffMember) error
	Delete(ctx context.Context, id string) error
	MaxUpdatedAt(ctx context.Context) (*time.Time, error)
}

type WorkItemRepo interface {
	Create(ctx context.Context, w *domain.WorkItem) error
	GetByID(ctx context.Context, id string) (*domain.WorkItem, error)
	List(ctx context.Context) ([]*domain.WorkItem, error)
	Update(ctx context.Context, w *domain.WorkItem) error
	Delete(ctx context.Context, id string) error
	MaxUpdatedAt(ctx context.Context) (*time.Time, error)
}

type AbsenceRepo interface {
	Create(ctx context.Context, a *domain.Absence) error
	List(ctx context.Context) ([]domain.Absence, error)
	ListByStaff(ctx context.Context, staffID string) ([]domain.Absence, error)
	Delete(ctx context.Context, id string) error
	DeleteByStaffDate(ctx context.Context, staffID string, date time.Time) error
	MaxCreatedAt(ctx context.Context) (*time.Time, error)
}

type ScheduleRepo interface {
	GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error)
	GetByWorkItemID(ctx context.Context, workItemID string) (*domain.ScheduleEntry, error)
	List(ctx context.Context) ([]*domain.ScheduleEntry, error)
	ListCompletedWorkItemIDs(ctx context.Context) (map[string]bool, error)
	InsertBatch(ctx context.Context, entries []*domain.ScheduleEntry) error
	Update(ctx context.Context, e *domain.ScheduleEntry) error
	DeleteAll(ctx context.Context) error
	DeleteNonCompleted(ctx context.Context) error
	MaxUpdatedAt(ctx context.Context) (*time.Time, error)
}

type VersionRepo interface {
	InsertBatch(ctx context.Context, records []domain.VersionRecord) error
	List(ctx context.Context, limit int) ([]domain.VersionRecord, error)
	ListByGeneration(ctx context.Context, generationID string) ([]domain.VersionRecord, error)
	ListByWorkItem(ctx context.Context, workItemID string) ([]domain.VersionRecord, error)
}
