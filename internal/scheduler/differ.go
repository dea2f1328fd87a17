package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
)

// DiffContext carries the denormalized names cached onto version records and
// the generation stamp shared by every record of one differ call.
type DiffContext struct {
	StaffNames     map[string]string
	WorkItemTitles map[string]string
	GenerationID   string
	GeneratedAt    time.Time
}

// Diff compares a freshly generated schedule against the previously persisted
// one and returns a version record for every tracked change. The comparison
// runs entirely in memory and has no side effects, so its output survives a
// later persistence failure.
//
// Classification per new entry:
//  1. a prior entry for the same work item and staff with different dates
//     yields a rescheduled record;
//  2. otherwise a prior entry for the work item under different staff yields
//     a reassigned record;
//  3. no prior entry yields nothing: first-time scheduling has no before
//     state to diff against, an intentional limitation.
//
// Unchanged entries (same staff, same dates) produce no record.
func Diff(newEntries []domain.ScheduleEntry, prior []*domain.ScheduleEntry, dc DiffContext) []domain.VersionRecord {
	type pairKey struct{ workItemID, staffID string }

	byPair := make(map[pairKey]*domain.ScheduleEntry, len(prior))
	byItem := make(map[string]*domain.ScheduleEntry, len(prior))
	for _, old := range prior {
		k := pairKey{workItemID: old.WorkItemID, staffID: old.StaffID}
		if _, ok := byPair[k]; !ok {
			byPair[k] = old
		}
		if _, ok := byItem[old.WorkItemID]; !ok {
			byItem[old.WorkItemID] = old
		}
	}

	var records []domain.VersionRecord
	for _, entry := range newEntries {
		old, ok := byPair[pairKey{workItemID: entry.WorkItemID, staffID: entry.StaffID}]
		change := domain.ChangeRescheduled
		if ok {
			if old.StartDate.Equal(entry.StartDate) && old.EndDate.Equal(entry.EndDate) {
				continue
			}
		} else {
			old, ok = byItem[entry.WorkItemID]
			if !ok || old.StaffID == entry.StaffID {
				continue
			}
			change = domain.ChangeReassigned
		}

		records = append(records, domain.VersionRecord{
			PrevEntryID:   old.ID,
			WorkItemID:    entry.WorkItemID,
			StaffID:       entry.StaffID,
			StaffName:     dc.StaffNames[entry.StaffID],
			WorkItemTitle: dc.WorkItemTitles[entry.WorkItemID],
			Change:        change,
			OldStart:      old.StartDate,
			OldEnd:        old.EndDate,
			NewStart:      entry.StartDate,
			NewEnd:        entry.EndDate,
			DeltaDays:     deltaDays(old.EndDate, entry.EndDate),
			GenerationID:  dc.GenerationID,
			GeneratedAt:   dc.GeneratedAt,
		})
	}

	return records
}

// deltaDays is the signed whole-day difference between new and old end dates.
func deltaDays(oldEnd, newEnd time.Time) int {
	return int(math.Floor(DateOnly(newEnd).Sub(DateOnly(oldEnd)).Hours() / 24))
}
