package service

import (
	"context"
	"time"

	"github.com/alexanderramin/crewplan/internal/repository"
)

type statusService struct {
	staff     repository.StaffRepo
	workItems repository.WorkItemRepo
	absences  repository.AbsenceRepo
	schedule  repository.ScheduleRepo
}

func NewStatusService(
	staff repository.StaffRepo,
	workItems repository.WorkItemRepo,
	absences repository.AbsenceRepo,
	schedule repository.ScheduleRepo,
) StatusService {
	return &statusService{staff: staff, workItems: workItems, absences: absences, schedule: schedule}
}

// NeedsRegeneration compares the most recent mutation across the three
// masters with the most recent schedule mutation. A schedule that has never
// been generated needs one as soon as any master data exists.
func (s *statusService) NeedsRegeneration(ctx context.Context) (bool, error) {
	staffMax, err := s.staff.MaxUpdatedAt(ctx)
	if err != nil {
		return false, err
	}
	itemMax, err := s.workItems.MaxUpdatedAt(ctx)
	if err != nil {
		return false, err
	}
	absenceMax, err := s.absences.MaxCreatedAt(ctx)
	if err != nil {
		return false, err
	}

	masterMax := latest(staffMax, itemMax, absenceMax)
	if masterMax == nil {
		return false, nil
	}

	scheduleMax, err := s.schedule.MaxUpdatedAt(ctx)
	if err != nil {
		return false, err
	}
	if scheduleMax == nil {
		return true, nil
	}
	return masterMax.After(*scheduleMax), nil
}

func latest(times ...*time.Time) *time.Time {
	var max *time.Time
	for _, t := range times {
		if t == nil {
			continue
		}
		if max == nil || t.After(*max) {
			max = t
		}
	}
	return max
}
