package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for master-data import.
type ImportSchema struct {
	Staff     []StaffImport    `json:"staff"`
	WorkItems []WorkItemImport `json:"work_items"`
	Absences  []AbsenceImport  `json:"absences,omitempty"`
}

// StaffImport defines a staff member in the import file. Ref is a
// file-local handle used by absences; it never reaches the database.
type StaffImport struct {
	Ref    string `json:"ref"`
	Name   string `json:"name"`
	Skill  string `json:"skill"`
	Active *bool  `json:"active,omitempty"`
}

// WorkItemImport defines a work item in the import file.
type WorkItemImport struct {
	Ref         string  `json:"ref"`
	Title       string  `json:"title"`
	Client      string  `json:"client,omitempty"`
	Skill       string  `json:"skill"`
	EffortHours int     `json:"effort_hours"`
	DueDate     *string `json:"due_date,omitempty"`
}

// AbsenceImport defines an absence keyed by staff ref.
type AbsenceImport struct {
	StaffRef string `json:"staff_ref"`
	Date     string `json:"date"`
}

// LoadImportSchema reads and parses a master-data import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
