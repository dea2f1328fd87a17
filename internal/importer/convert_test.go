package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertImportSchema(t *testing.T) {
	res, err := ConvertImportSchema(validSchema())
	require.NoError(t, err)

	require.Len(t, res.Staff, 2)
	alice, bob := res.Staff[0], res.Staff[1]
	assert.NotEmpty(t, alice.ID)
	assert.Equal(t, domain.SkillDeveloper, alice.Skill)
	assert.True(t, alice.Active)
	assert.False(t, bob.Active, "explicit active:false is honored")

	require.Len(t, res.WorkItems, 2)
	assert.Equal(t, 16, res.WorkItems[0].EffortHours)
	require.NotNil(t, res.WorkItems[0].DueDate)
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), *res.WorkItems[0].DueDate)
	assert.Nil(t, res.WorkItems[1].DueDate)

	require.Len(t, res.Absences, 1)
	assert.Equal(t, alice.ID, res.Absences[0].StaffID, "staff ref resolves to generated ID")
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), res.Absences[0].Date)
}

func TestConvertImportSchema_UnknownStaffRef(t *testing.T) {
	schema := validSchema()
	schema.Absences = []AbsenceImport{{StaffRef: "ghost", Date: "2025-06-03"}}

	_, err := ConvertImportSchema(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown staff ref")
}

func TestLoadImportSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"staff": [{"ref": "a", "name": "Alice", "skill": "developer"}],
		"work_items": [{"ref": "w", "title": "Task", "skill": "developer", "effort_hours": 8}]
	}`), 0644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	require.Len(t, schema.Staff, 1)
	assert.Equal(t, "Alice", schema.Staff[0].Name)
	require.Len(t, schema.WorkItems, 1)
	assert.Equal(t, 8, schema.WorkItems[0].EffortHours)
}

func TestLoadImportSchema_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := LoadImportSchema(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}
