package scheduler

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
)

// Input carries everything one generator run reads. Staff order matters: it
// is the tie-break order for assignment selection.
type Input struct {
	Staff     []*domain.StaffMember
	WorkItems []*domain.WorkItem
	Absences  []domain.Absence

	// Today is the earliest date any allocation may start.
	Today time.Time

	// DailyCapacityHours defaults to DefaultDailyCapacityHours when zero.
	DailyCapacityHours int
}

// Blackout marks a staff member unavailable over an inclusive date range
// during a simulation run.
type Blackout struct {
	StaffID string
	From    time.Time
	To      time.Time
}

// Overrides are the temporary what-if inputs of a simulation run. They never
// touch persisted state.
type Overrides struct {
	// DelayDays shifts a work item's earliest eligible date forward by the
	// given number of working days.
	DelayDays map[string]int

	Blackouts []Blackout
}

// Result is the outcome of one generator run. Entries carry no IDs or
// persistence timestamps; those are assigned when the plan is persisted.
type Result struct {
	Entries []domain.ScheduleEntry

	// SkippedWorkItemIDs lists items with no skill-matching staff. Skipping
	// is not an error; callers surface it as a warning and a metric.
	SkippedWorkItemIDs []string

	// RejectedOverrides describes simulation override entries that referenced
	// unknown IDs or inverted date ranges. Each is rejected individually; the
	// rest of the simulation proceeds.
	RejectedOverrides []string
}

// Generate produces a full schedule from live master data.
//
// Work items are placed in ascending effort order (stable sort): smaller
// items first, so fewer large items starve late-processed staff. Each item
// goes to the least-loaded skill match and occupies consecutive working days
// from that staff member's next available date.
func Generate(in Input) Result {
	return generate(in, nil, nil)
}

// Simulate runs the same scheduling pass with delay and blackout overrides
// applied on top of the real inputs. Blackouts are expanded into synthetic
// absences before scheduling begins; duplicates with existing absences are
// not double-counted. The result is a preview and is never persisted here.
func Simulate(in Input, ov Overrides) Result {
	staffKnown := make(map[string]bool, len(in.Staff))
	for _, s := range in.Staff {
		staffKnown[s.ID] = true
	}
	itemKnown := make(map[string]bool, len(in.WorkItems))
	for _, w := range in.WorkItems {
		itemKnown[w.ID] = true
	}

	var rejected []string

	delays := make(map[string]int, len(ov.DelayDays))
	for id, days := range ov.DelayDays {
		if !itemKnown[id] {
			rejected = append(rejected, fmt.Sprintf("delay override: unknown work item %q", id))
			continue
		}
		if days < 0 {
			rejected = append(rejected, fmt.Sprintf("delay override: negative delay %d for work item %q", days, id))
			continue
		}
		delays[id] = days
	}

	absences := make([]domain.Absence, len(in.Absences))
	copy(absences, in.Absences)
	for _, b := range ov.Blackouts {
		if !staffKnown[b.StaffID] {
			rejected = append(rejected, fmt.Sprintf("blackout override: unknown staff %q", b.StaffID))
			continue
		}
		from, to := DateOnly(b.From), DateOnly(b.To)
		if from.After(to) {
			rejected = append(rejected, fmt.Sprintf("blackout override: inverted range for staff %q", b.StaffID))
			continue
		}
		for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
			absences = append(absences, domain.Absence{StaffID: b.StaffID, Date: day})
		}
	}

	sim := in
	sim.Absences = absences
	res := generate(sim, delays, rejected)
	return res
}

func generate(in Input, delays map[string]int, rejected []string) Result {
	capacity := in.DailyCapacityHours
	if capacity <= 0 {
		capacity = DefaultDailyCapacityHours
	}

	cal := NewCalendar(in.Absences)
	today := DateOnly(in.Today)

	items := make([]*domain.WorkItem, len(in.WorkItems))
	copy(items, in.WorkItems)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EffortHours < items[j].EffortHours
	})

	nextAvailable := make(map[string]time.Time, len(in.Staff))
	allocated := make(map[string]int, len(in.Staff))
	for _, s := range in.Staff {
		nextAvailable[s.ID] = today
		allocated[s.ID] = 0
	}

	res := Result{RejectedOverrides: rejected}

	for _, item := range items {
		staff := SelectStaff(in.Staff, item.Skill, allocated)
		if staff == nil {
			res.SkippedWorkItemIDs = append(res.SkippedWorkItemIDs, item.ID)
			continue
		}

		earliest := cal.NextWorkingDay(staff.ID, nextAvailable[staff.ID])
		if delay := delays[item.ID]; delay > 0 {
			earliest = cal.AddWorkingDays(staff.ID, earliest, delay)
		}

		alloc := WalkAllocation(cal, staff.ID, item.EffortHours, earliest, capacity)
		nextAvailable[staff.ID] = alloc.NextAvailable
		allocated[staff.ID] += item.EffortHours

		entry := domain.ScheduleEntry{
			WorkItemID: item.ID,
			StaffID:    staff.ID,
			StartDate:  alloc.Start,
			EndDate:    alloc.End,
			Hours:      item.EffortHours,
		}
		stampOverdue(&entry, item.DueDate)
		res.Entries = append(res.Entries, entry)
	}

	return res
}

// stampOverdue marks an entry whose end date exceeds the work item's due date.
func stampOverdue(e *domain.ScheduleEntry, due *time.Time) {
	if due == nil || !e.EndDate.After(*due) {
		e.Overdue = false
		e.DaysOverdue = 0
		return
	}
	e.Overdue = true
	e.DaysOverdue = int(math.Ceil(e.EndDate.Sub(DateOnly(*due)).Hours() / 24))
}
