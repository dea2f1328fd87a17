package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	staffRefs := make(map[string]bool)
	errs = append(errs, validateStaff(schema.Staff, staffRefs)...)
	errs = append(errs, validateWorkItems(schema.WorkItems)...)
	errs = append(errs, validateAbsences(schema.Absences, staffRefs)...)

	return errs
}

func validateStaff(staff []StaffImport, staffRefs map[string]bool) []error {
	var errs []error

	for i, s := range staff {
		prefix := fmt.Sprintf("staff[%d]", i)

		if s.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if staffRefs[s.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, s.Ref))
		} else {
			staffRefs[s.Ref] = true
		}

		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if s.Skill == "" {
			errs = append(errs, fmt.Errorf("%s.skill is required", prefix))
		} else if !domain.ValidSkills[s.Skill] {
			errs = append(errs, fmt.Errorf("%s.skill: invalid value %q", prefix, s.Skill))
		}
	}

	return errs
}

func validateWorkItems(items []WorkItemImport) []error {
	var errs []error

	refs := make(map[string]bool)
	for i, w := range items {
		prefix := fmt.Sprintf("work_items[%d]", i)

		if w.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[w.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, w.Ref))
		} else {
			refs[w.Ref] = true
		}

		if w.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if w.Skill == "" {
			errs = append(errs, fmt.Errorf("%s.skill is required", prefix))
		} else if !domain.ValidSkills[w.Skill] {
			errs = append(errs, fmt.Errorf("%s.skill: invalid value %q", prefix, w.Skill))
		}
		if w.EffortHours <= 0 {
			errs = append(errs, fmt.Errorf("%s.effort_hours must be positive, got %d", prefix, w.EffortHours))
		}

		errs = append(errs, validateOptionalDate(prefix+".due_date", w.DueDate)...)
	}

	return errs
}

func validateAbsences(absences []AbsenceImport, staffRefs map[string]bool) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, a := range absences {
		prefix := fmt.Sprintf("absences[%d]", i)

		if a.StaffRef == "" {
			errs = append(errs, fmt.Errorf("%s.staff_ref is required", prefix))
		} else if !staffRefs[a.StaffRef] {
			errs = append(errs, fmt.Errorf("%s.staff_ref: ref %q not found in staff", prefix, a.StaffRef))
		}

		if a.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := time.Parse("2006-01-02", a.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, a.Date))
		}

		if a.StaffRef != "" && a.Date != "" {
			key := a.StaffRef + "|" + a.Date
			if seen[key] {
				errs = append(errs, fmt.Errorf("%s: duplicate absence for %q on %s", prefix, a.StaffRef, a.Date))
			}
			seen[key] = true
		}
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}
