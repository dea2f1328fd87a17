package domain

import "time"

// VersionRecord captures one work item's change between two plan generations.
// Staff name and work item title are denormalized so history survives later
// deletion of either master row. Records are immutable once written.
type VersionRecord struct {
	ID          string
	PrevEntryID string
	WorkItemID  string

	// StaffID and StaffName refer to the new assignment; for reassignments the
	// prior assignee is reachable through PrevEntryID's cached dates.
	StaffID       string
	StaffName     string
	WorkItemTitle string

	Change VersionChange

	OldStart time.Time
	OldEnd   time.Time
	NewStart time.Time
	NewEnd   time.Time

	// DeltaDays is the signed day difference between new and old end dates.
	DeltaDays int

	// GenerationID is shared by every record produced in one generator run.
	GenerationID string
	GeneratedAt  time.Time
}
