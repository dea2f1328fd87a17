package domain

import "time"

// Absence marks a single staff member as unavailable on a single date.
// Simulation blackout windows are expanded into the same shape before
// scheduling, so the engine never distinguishes the two sources.
type Absence struct {
	ID      string
	StaffID string
	Date    time.Time

	CreatedAt time.Time
}
