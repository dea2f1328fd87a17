package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/google/uuid"
)

// ImportResult holds the converted domain objects ready for persistence.
// Absences already carry resolved staff IDs.
type ImportResult struct {
	Staff     []*domain.StaffMember
	WorkItems []*domain.WorkItem
	Absences  []domain.Absence
}

// ConvertImportSchema turns a validated schema into domain objects with fresh
// IDs. Call ValidateImportSchema first; conversion assumes a clean schema and
// only fails on problems validation cannot catch.
func ConvertImportSchema(schema *ImportSchema) (*ImportResult, error) {
	now := time.Now().UTC()
	res := &ImportResult{}

	staffByRef := make(map[string]string, len(schema.Staff))
	for _, s := range schema.Staff {
		active := true
		if s.Active != nil {
			active = *s.Active
		}
		m := &domain.StaffMember{
			ID:        uuid.New().String(),
			Name:      s.Name,
			Skill:     domain.Skill(s.Skill),
			Active:    active,
			CreatedAt: now,
			UpdatedAt: now,
		}
		staffByRef[s.Ref] = m.ID
		res.Staff = append(res.Staff, m)
	}

	for _, w := range schema.WorkItems {
		item := &domain.WorkItem{
			ID:          uuid.New().String(),
			Title:       w.Title,
			Client:      w.Client,
			Skill:       domain.Skill(w.Skill),
			EffortHours: w.EffortHours,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if w.DueDate != nil && *w.DueDate != "" {
			due, err := time.Parse("2006-01-02", *w.DueDate)
			if err != nil {
				return nil, fmt.Errorf("work item %q: parsing due_date: %w", w.Ref, err)
			}
			item.DueDate = &due
		}
		res.WorkItems = append(res.WorkItems, item)
	}

	for _, a := range schema.Absences {
		staffID, ok := staffByRef[a.StaffRef]
		if !ok {
			return nil, fmt.Errorf("absence references unknown staff ref %q", a.StaffRef)
		}
		date, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			return nil, fmt.Errorf("absence for %q: parsing date: %w", a.StaffRef, err)
		}
		res.Absences = append(res.Absences, domain.Absence{
			ID:        uuid.New().String(),
			StaffID:   staffID,
			Date:      date,
			CreatedAt: now,
		})
	}

	return res, nil
}
