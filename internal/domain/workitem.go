package domain

import "time"

type WorkItem struct {
	ID     string
	Title  string
	Client string
	Skill  Skill

	// EffortHours is the total estimated effort. It is usually a multiple of
	// the daily capacity but is not required to be.
	EffortHours int

	DueDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
