package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/contract"
	"github.com/alexanderramin/crewplan/internal/db"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/metrics"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/scheduler"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type planService struct {
	staff     repository.StaffRepo
	workItems repository.WorkItemRepo
	absences  repository.AbsenceRepo
	schedule  repository.ScheduleRepo
	versions  repository.VersionRepo
	uow       db.UnitOfWork

	capacityHours int
	log           zerolog.Logger
	collector     *metrics.Collector
}

// NewPlanService wires the plan engine. capacityHours <= 0 falls back to the
// default daily capacity. collector may be nil.
func NewPlanService(
	staff repository.StaffRepo,
	workItems repository.WorkItemRepo,
	absences repository.AbsenceRepo,
	schedule repository.ScheduleRepo,
	versions repository.VersionRepo,
	uow db.UnitOfWork,
	capacityHours int,
	log zerolog.Logger,
	collector *metrics.Collector,
) PlanService {
	return &planService{
		staff:         staff,
		workItems:     workItems,
		absences:      absences,
		schedule:      schedule,
		versions:      versions,
		uow:           uow,
		capacityHours: capacityHours,
		log:           log,
		collector:     collector,
	}
}

// Generate runs one real generation end to end: read masters, compute the
// candidate schedule (or take the precomputed one), diff against the
// persisted schedule, write version records, then replace the schedule.
//
// The replace happens inside a single transaction, so a failed write leaves
// the prior schedule intact. There is no lock across concurrent Generate
// calls: two simultaneous runs each diff against their own snapshot and the
// later write wins. Known limitation.
func (s *planService) Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	staff, err := s.staff.List(ctx, true)
	if err != nil {
		return nil, dataAccess("loading staff", err)
	}
	items, err := s.workItems.List(ctx)
	if err != nil {
		return nil, dataAccess("loading work items", err)
	}
	absences, err := s.absences.List(ctx)
	if err != nil {
		return nil, dataAccess("loading absences", err)
	}
	prior, err := s.schedule.List(ctx)
	if err != nil {
		return nil, dataAccess("loading current schedule", err)
	}

	if req.ExcludeCompleted {
		completed, err := s.schedule.ListCompletedWorkItemIDs(ctx)
		if err != nil {
			return nil, dataAccess("loading completed work items", err)
		}
		var open []*domain.WorkItem
		for _, w := range items {
			if !completed[w.ID] {
				open = append(open, w)
			}
		}
		items = open
	}

	var entries []domain.ScheduleEntry
	var skipped []string
	if req.Precomputed != nil {
		entries = req.Precomputed
	} else {
		res := scheduler.Generate(scheduler.Input{
			Staff:              staff,
			WorkItems:          items,
			Absences:           absences,
			Today:              now,
			DailyCapacityHours: s.capacityHours,
		})
		entries = res.Entries
		skipped = res.SkippedWorkItemIDs
	}

	for _, id := range skipped {
		s.log.Warn().Str("work_item_id", id).Msg("work item skipped: no staff with matching skill")
	}

	generationID := uuid.New().String()
	records := scheduler.Diff(entries, prior, scheduler.DiffContext{
		StaffNames:     staffNames(staff),
		WorkItemTitles: workItemTitles(items),
		GenerationID:   generationID,
		GeneratedAt:    now,
	})

	resp := &contract.GenerateResponse{
		GenerationID:       generationID,
		GeneratedAt:        now,
		SkippedWorkItemIDs: skipped,
	}

	// Version history is written before the replace so cascading deletes can
	// never lose the old-entry linkage. A failed history write is logged and
	// generation proceeds; losing history is better than losing the plan.
	for i := range records {
		records[i].ID = uuid.New().String()
	}
	if len(records) > 0 {
		if err := s.versions.InsertBatch(ctx, records); err != nil {
			s.log.Error().Err(err).Str("generation_id", generationID).Msg("writing version records failed")
			if s.collector != nil {
				s.collector.RecordVersionWriteFailure()
			}
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("version history not recorded: %v", err))
			records = nil
		}
	}

	persisted := make([]*domain.ScheduleEntry, len(entries))
	for i := range entries {
		e := entries[i]
		e.ID = uuid.New().String()
		e.CreatedAt = now
		e.UpdatedAt = now
		persisted[i] = &e
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedule := repository.NewSQLiteScheduleRepo(tx)
		if req.ExcludeCompleted {
			if err := txSchedule.DeleteNonCompleted(ctx); err != nil {
				return err
			}
		} else {
			if err := txSchedule.DeleteAll(ctx); err != nil {
				return err
			}
		}
		return txSchedule.InsertBatch(ctx, persisted)
	})
	if err != nil {
		return nil, dataAccess("replacing schedule", err)
	}

	for i := range persisted {
		resp.Entries = append(resp.Entries, *persisted[i])
	}
	resp.VersionRecords = records

	if s.collector != nil {
		s.collector.RecordGeneration(len(skipped), len(records))
	}
	s.log.Info().
		Str("generation_id", generationID).
		Int("entries", len(resp.Entries)).
		Int("version_records", len(records)).
		Int("skipped", len(skipped)).
		Msg("plan generated")

	return resp, nil
}

// Simulate computes a candidate schedule under temporary delay and blackout
// overrides. Nothing is persisted; the caller may later hand the returned
// entries to Generate as a precomputed schedule to apply the preview.
func (s *planService) Simulate(ctx context.Context, req contract.SimulateRequest) (*contract.SimulateResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	staff, err := s.staff.List(ctx, true)
	if err != nil {
		return nil, dataAccess("loading staff", err)
	}
	items, err := s.workItems.List(ctx)
	if err != nil {
		return nil, dataAccess("loading work items", err)
	}
	absences, err := s.absences.List(ctx)
	if err != nil {
		return nil, dataAccess("loading absences", err)
	}

	blackouts := make([]scheduler.Blackout, len(req.Blackouts))
	for i, b := range req.Blackouts {
		blackouts[i] = scheduler.Blackout{StaffID: b.StaffID, From: b.From, To: b.To}
	}

	res := scheduler.Simulate(scheduler.Input{
		Staff:              staff,
		WorkItems:          items,
		Absences:           absences,
		Today:              now,
		DailyCapacityHours: s.capacityHours,
	}, scheduler.Overrides{
		DelayDays: req.DelayDays,
		Blackouts: blackouts,
	})

	for _, msg := range res.RejectedOverrides {
		s.log.Warn().Str("override", msg).Msg("simulation override rejected")
	}
	if s.collector != nil {
		s.collector.RecordSimulation(len(res.SkippedWorkItemIDs), len(res.RejectedOverrides))
	}

	return &contract.SimulateResponse{
		Entries:            res.Entries,
		SkippedWorkItemIDs: res.SkippedWorkItemIDs,
		RejectedOverrides:  res.RejectedOverrides,
	}, nil
}

// Complete marks a work item's entry finished. The end date is rewritten to
// the completion date, which may retroactively flip the overdue
// classification in either direction.
func (s *planService) Complete(ctx context.Context, req contract.CompleteRequest) (*domain.ScheduleEntry, error) {
	entry, err := s.schedule.GetByWorkItemID(ctx, req.WorkItemID)
	if err != nil {
		return nil, err
	}
	if entry.Completed {
		return nil, &contract.PlanError{
			Code:    contract.PlanErrAlreadyComplete,
			Message: fmt.Sprintf("work item %s is already completed", req.WorkItemID),
		}
	}

	item, err := s.workItems.GetByID(ctx, req.WorkItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	completedAt := now
	if req.CompletedAt != nil {
		completedAt = req.CompletedAt.UTC()
	}
	completionDate := scheduler.DateOnly(completedAt)

	entry.Completed = true
	entry.CompletedAt = &completedAt
	entry.EndDate = completionDate
	entry.CompletionStatus = domain.ClassifyCompletion(completionDate, item.DueDate)
	if entry.EndDate.Before(entry.StartDate) {
		entry.StartDate = entry.EndDate
	}
	if item.DueDate != nil && entry.EndDate.After(*item.DueDate) {
		entry.Overdue = true
		entry.DaysOverdue = int(entry.EndDate.Sub(scheduler.DateOnly(*item.DueDate)).Hours() / 24)
	} else {
		entry.Overdue = false
		entry.DaysOverdue = 0
	}
	entry.UpdatedAt = now

	if err := s.schedule.Update(ctx, entry); err != nil {
		return nil, dataAccess("updating schedule entry", err)
	}

	s.log.Info().
		Str("work_item_id", req.WorkItemID).
		Str("status", string(entry.CompletionStatus)).
		Msg("work item completed")

	return entry, nil
}

func (s *planService) Schedule(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	return s.schedule.List(ctx)
}

func (s *planService) History(ctx context.Context, limit int) ([]domain.VersionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.versions.List(ctx, limit)
}

func (s *planService) HistoryByWorkItem(ctx context.Context, workItemID string) ([]domain.VersionRecord, error) {
	return s.versions.ListByWorkItem(ctx, workItemID)
}

func dataAccess(op string, err error) error {
	return &contract.PlanError{
		Code:    contract.PlanErrDataAccess,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}

func staffNames(staff []*domain.StaffMember) map[string]string {
	names := make(map[string]string, len(staff))
	for _, m := range staff {
		names[m.ID] = m.Name
	}
	return names
}

func workItemTitles(items []*domain.WorkItem) map[string]string {
	titles := make(map[string]string, len(items))
	for _, w := range items {
		titles[w.ID] = w.Title
	}
	return titles
}
