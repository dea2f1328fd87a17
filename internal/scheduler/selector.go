package scheduler

import "github.com/alexanderramin/crewplan/internal/domain"

// SelectStaff picks the assignee for a work item requiring the given skill:
// the staff member with the strictly smallest running allocated-hours tally
// among exact skill matches. Ties break by input order (first one wins) so
// regeneration with identical inputs is reproducible. Returns nil when no
// staff member matches; the caller skips the item rather than failing.
func SelectStaff(staff []*domain.StaffMember, required domain.Skill, allocated map[string]int) *domain.StaffMember {
	var best *domain.StaffMember
	for _, s := range staff {
		if s.Skill != required {
			continue
		}
		if best == nil || allocated[s.ID] < allocated[best.ID] {
			best = s
		}
	}
	return best
}
