package service

import (
	"context"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/scheduler"
	"github.com/google/uuid"
)

type absenceService struct {
	absences repository.AbsenceRepo
	staff    repository.StaffRepo
}

func NewAbsenceService(absences repository.AbsenceRepo, staff repository.StaffRepo) AbsenceService {
	return &absenceService{absences: absences, staff: staff}
}

func (s *absenceService) Add(ctx context.Context, staffID string, date time.Time) (*domain.Absence, error) {
	if _, err := s.staff.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	a := &domain.Absence{
		ID:        uuid.New().String(),
		StaffID:   staffID,
		Date:      scheduler.DateOnly(date),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.absences.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *absenceService) List(ctx context.Context) ([]domain.Absence, error) {
	return s.absences.List(ctx)
}

func (s *absenceService) ListByStaff(ctx context.Context, staffID string) ([]domain.Absence, error) {
	return s.absences.ListByStaff(ctx, staffID)
}

func (s *absenceService) Remove(ctx context.Context, staffID string, date time.Time) error {
	return s.absences.DeleteByStaffDate(ctx, staffID, scheduler.DateOnly(date))
}
