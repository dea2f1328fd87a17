package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/google/uuid"
)

type staffService struct {
	staff repository.StaffRepo
}

func NewStaffService(staff repository.StaffRepo) StaffService {
	return &staffService{staff: staff}
}

func (s *staffService) Create(ctx context.Context, m *domain.StaffMember) error {
	if m.Name == "" {
		return fmt.Errorf("staff name is required")
	}
	if !domain.ValidSkills[string(m.Skill)] {
		return fmt.Errorf("invalid skill %q", m.Skill)
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.staff.Create(ctx, m)
}

func (s *staffService) GetByID(ctx context.Context, id string) (*domain.StaffMember, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *staffService) List(ctx context.Context, activeOnly bool) ([]*domain.StaffMember, error) {
	return s.staff.List(ctx, activeOnly)
}

func (s *staffService) Update(ctx context.Context, m *domain.StaffMember) error {
	if !domain.ValidSkills[string(m.Skill)] {
		return fmt.Errorf("invalid skill %q", m.Skill)
	}
	m.UpdatedAt = time.Now().UTC()
	return s.staff.Update(ctx, m)
}

// Delete removes the staff member. Schedule entries and absences cascade at
// the schema level, so the whole removal is one atomic statement.
func (s *staffService) Delete(ctx context.Context, id string) error {
	if _, err := s.staff.GetByID(ctx, id); err != nil {
		return err
	}
	return s.staff.Delete(ctx, id)
}
