package contract

import (
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
)

// GenerateRequest drives one real plan generation.
type GenerateRequest struct {
	// ExcludeCompleted keeps work items whose current entry is completed out
	// of the run and leaves their persisted entries physically untouched.
	ExcludeCompleted bool

	// Now overrides the scheduling start date, mainly for tests.
	Now *time.Time

	// Precomputed applies a previously previewed simulation schedule verbatim
	// instead of recomputing from master data.
	Precomputed []domain.ScheduleEntry
}

type GenerateResponse struct {
	GenerationID string
	GeneratedAt  time.Time

	Entries        []domain.ScheduleEntry
	VersionRecords []domain.VersionRecord

	// SkippedWorkItemIDs lists items with no skill-matching staff.
	SkippedWorkItemIDs []string

	// Warnings carries non-fatal problems, such as a failed version-history
	// write that did not abort the generation.
	Warnings []string
}

// BlackoutWindow marks a staff member unavailable over an inclusive date
// range during a simulation.
type BlackoutWindow struct {
	StaffID string
	From    time.Time
	To      time.Time
}

// SimulateRequest drives one what-if run. It never persists anything.
type SimulateRequest struct {
	// DelayDays shifts work items' earliest eligible dates forward by the
	// given number of working days.
	DelayDays map[string]int

	Blackouts []BlackoutWindow

	Now *time.Time
}

type SimulateResponse struct {
	Entries            []domain.ScheduleEntry
	SkippedWorkItemIDs []string

	// RejectedOverrides describes override entries dropped for referencing
	// unknown IDs or inverted ranges; the rest of the simulation proceeded.
	RejectedOverrides []string
}

// CompleteRequest marks one schedule entry's work item as finished.
type CompleteRequest struct {
	WorkItemID string

	// CompletedAt defaults to now. The entry's end date is rewritten to this
	// date, which may retroactively change its overdue classification.
	CompletedAt *time.Time
}

type PlanErrorCode string

const (
	PlanErrDataAccess      PlanErrorCode = "DATA_ACCESS"
	PlanErrNoStaff         PlanErrorCode = "NO_STAFF"
	PlanErrNoWorkItems     PlanErrorCode = "NO_WORK_ITEMS"
	PlanErrAlreadyComplete PlanErrorCode = "ALREADY_COMPLETE"
	PlanErrInternal        PlanErrorCode = "INTERNAL_ERROR"
)

// PlanError is the structured failure result surfaced to the triggering
// layer. Real-mode generation exposes no partial schedule on failure.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
