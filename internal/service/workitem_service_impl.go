package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/google/uuid"
)

type workItemService struct {
	workItems repository.WorkItemRepo
}

func NewWorkItemService(workItems repository.WorkItemRepo) WorkItemService {
	return &workItemService{workItems: workItems}
}

func (s *workItemService) Create(ctx context.Context, w *domain.WorkItem) error {
	if err := validateWorkItem(w); err != nil {
		return err
	}
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	w.CreatedAt = now
	w.UpdatedAt = now
	return s.workItems.Create(ctx, w)
}

func (s *workItemService) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	return s.workItems.GetByID(ctx, id)
}

func (s *workItemService) List(ctx context.Context) ([]*domain.WorkItem, error) {
	return s.workItems.List(ctx)
}

func (s *workItemService) Update(ctx context.Context, w *domain.WorkItem) error {
	if err := validateWorkItem(w); err != nil {
		return err
	}
	w.UpdatedAt = time.Now().UTC()
	return s.workItems.Update(ctx, w)
}

func (s *workItemService) Delete(ctx context.Context, id string) error {
	if _, err := s.workItems.GetByID(ctx, id); err != nil {
		return err
	}
	return s.workItems.Delete(ctx, id)
}

func validateWorkItem(w *domain.WorkItem) error {
	if w.Title == "" {
		return fmt.Errorf("work item title is required")
	}
	if !domain.ValidSkills[string(w.Skill)] {
		return fmt.Errorf("invalid skill %q", w.Skill)
	}
	if w.EffortHours <= 0 {
		return fmt.Errorf("effort must be positive, got %d", w.EffortHours)
	}
	return nil
}
