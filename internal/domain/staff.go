package domain

import "time"

type StaffMember struct {
	ID     string
	Name   string
	Skill  Skill
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
