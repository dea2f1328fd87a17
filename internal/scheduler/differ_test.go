package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diffContext() DiffContext {
	return DiffContext{
		StaffNames:     map[string]string{"dev1": "Alice", "dev2": "Bob"},
		WorkItemTitles: map[string]string{"wi1": "API work", "wi2": "UI work"},
		GenerationID:   "gen-1",
		GeneratedAt:    time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
}

func priorEntry(id, workItemID, staffID string, start, end time.Time) *domain.ScheduleEntry {
	return &domain.ScheduleEntry{
		ID:         id,
		WorkItemID: workItemID,
		StaffID:    staffID,
		StartDate:  start,
		EndDate:    end,
	}
}

func TestDiff_UnchangedEntryProducesNoRecord(t *testing.T) {
	prior := []*domain.ScheduleEntry{
		priorEntry("e1", "wi1", "dev1", date(2025, 6, 2), date(2025, 6, 3)),
	}
	entries := []domain.ScheduleEntry{
		{WorkItemID: "wi1", StaffID: "dev1", StartDate: date(2025, 6, 2), EndDate: date(2025, 6, 3)},
	}

	assert.Empty(t, Diff(entries, prior, diffContext()))
}

func TestDiff_DateShiftYieldsRescheduled(t *testing.T) {
	prior := []*domain.ScheduleEntry{
		priorEntry("e1", "wi1", "dev1", date(2025, 6, 2), date(2025, 6, 3)),
	}
	entries := []domain.ScheduleEntry{
		{WorkItemID: "wi1", StaffID: "dev1", StartDate: date(2025, 6, 4), EndDate: date(2025, 6, 5)},
	}

	records := Diff(entries, prior, diffContext())
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, domain.ChangeRescheduled, r.Change)
	assert.Equal(t, "e1", r.PrevEntryID)
	assert.Equal(t, "wi1", r.WorkItemID)
	assert.Equal(t, "dev1", r.StaffID)
	assert.Equal(t, "Alice", r.StaffName)
	assert.Equal(t, "API work", r.WorkItemTitle)
	assert.Equal(t, date(2025, 6, 2), r.OldStart)
	assert.Equal(t, date(2025, 6, 3), r.OldEnd)
	assert.Equal(t, date(2025, 6, 4), r.NewStart)
	assert.Equal(t, date(2025, 6, 5), r.NewEnd)
	assert.Equal(t, 2, r.DeltaDays)
	assert.Equal(t, "gen-1", r.GenerationID)
}

func TestDiff_EarlierEndYieldsNegativeDelta(t *testing.T) {
	prior := []*domain.ScheduleEntry{
		priorEntry("e1", "wi1", "dev1", date(2025, 6, 4), date(2025, 6, 6)),
	}
	entries := []domain.ScheduleEntry{
		{WorkItemID: "wi1", StaffID: "dev1", StartDate: date(2025, 6, 2), EndDate: date(2025, 6, 3)},
	}

	records := Diff(entries, prior, diffContext())
	require.Len(t, records, 1)
	assert.Equal(t, -3, records[0].DeltaDays)
}

func TestDiff_StaffChangeYieldsReassigned(t *testing.T) {
	prior := []*domain.ScheduleEntry{
		priorEntry("e1", "wi1", "dev1", date(2025, 6, 2), date(2025, 6, 3)),
	}
	entries := []domain.ScheduleEntry{
		{WorkItemID: "wi1", StaffID: "dev2", StartDate: date(2025, 6, 2), EndDate: date(2025, 6, 3)},
	}

	records := Diff(entries, prior, diffContext())
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, domain.ChangeReassigned, r.Change)
	assert.Equal(t, "dev2", r.StaffID)
	assert.Equal(t, "Bob", r.StaffName)
	assert.Equal(t, "e1", r.PrevEntryID)
	assert.Zero(t, r.DeltaDays)
}

func TestDiff_FirstTimeSchedulingUntracked(t *testing.T) {
	entries := []domain.ScheduleEntry{
		{WorkItemID: "wi1", StaffID: "dev1", StartDate: date(2025, 6, 2), EndDate: date(2025, 6, 3)},
	}

	assert.Empty(t, Diff(entries, nil, diffContext()))
}

func TestDiff_MixedChangesShareGeneration(t *testing.T) {
	prior := []*domain.ScheduleEntry{
		priorEntry("e1", "wi1", "dev1", date(2025, 6, 2), date(2025, 6, 3)),
		priorEntry("e2", "wi2", "dev1", date(2025, 6, 4), date(2025, 6, 5)),
	}
	entries := []domain.ScheduleEntry{
		{WorkItemID: "wi1", StaffID: "dev1", StartDate: date(2025, 6, 3), EndDate: date(2025, 6, 4)},
		{WorkItemID: "wi2", StaffID: "dev2", StartDate: date(2025, 6, 4), EndDate: date(2025, 6, 5)},
	}

	records := Diff(entries, prior, diffContext())
	require.Len(t, records, 2)
	assert.Equal(t, domain.ChangeRescheduled, records[0].Change)
	assert.Equal(t, domain.ChangeReassigned, records[1].Change)
	for _, r := range records {
		assert.Equal(t, "gen-1", r.GenerationID)
		assert.Equal(t, diffContext().GeneratedAt, r.GeneratedAt)
	}
}

func TestDiff_IdenticalRegenerationIsQuiet(t *testing.T) {
	in := Input{
		Staff: []*domain.StaffMember{
			staffMember("dev1", domain.SkillDeveloper),
			staffMember("dev2", domain.SkillDeveloper),
		},
		WorkItems: []*domain.WorkItem{
			workItem("wi1", domain.SkillDeveloper, 8),
			workItem("wi2", domain.SkillDeveloper, 16),
		},
		Today: date(2025, 6, 2),
	}

	first := Generate(in)
	prior := make([]*domain.ScheduleEntry, len(first.Entries))
	for i := range first.Entries {
		e := first.Entries[i]
		e.ID = "persisted"
		prior[i] = &e
	}

	second := Generate(in)
	assert.Empty(t, Diff(second.Entries, prior, diffContext()))
}
