package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/logging"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/service"
	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	staffRepo := repository.NewSQLiteStaffRepo(database)
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	absenceRepo := repository.NewSQLiteAbsenceRepo(database)
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	versionRepo := repository.NewSQLiteVersionRepo(database)

	return &App{
		Staff:     service.NewStaffService(staffRepo),
		WorkItems: service.NewWorkItemService(workItemRepo),
		Absences:  service.NewAbsenceService(absenceRepo, staffRepo),
		Plan: service.NewPlanService(
			staffRepo, workItemRepo, absenceRepo, scheduleRepo, versionRepo,
			testutil.NewTestUoW(database), 8, logging.Nop(), nil,
		),
		Status: service.NewStatusService(staffRepo, workItemRepo, absenceRepo, scheduleRepo),
	}
}

// executeCmd runs a cobra command and captures cobra-level output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "crewplan")
}

func TestStaffAddCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "staff", "add", "--name", "Alice", "--skill", "developer")
	require.NoError(t, err)

	members, err := app.Staff.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, domain.SkillDeveloper, members[0].Skill)
}

func TestStaffAddCmd_RequiresFlags(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "staff", "add", "--name", "Alice")
	assert.Error(t, err)
}

func TestStaffAddCmd_InvalidSkill(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "staff", "add", "--name", "Alice", "--skill", "pilot")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid skill")
}

func TestWorkAddCmd_WithDueDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "work", "add",
		"--title", "API endpoint", "--skill", "developer", "--effort", "16",
		"--due", "2025-06-20")
	require.NoError(t, err)

	items, err := app.WorkItems.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].DueDate)
	assert.Equal(t, "2025-06-20", items[0].DueDate.Format("2006-01-02"))
}

func TestWorkAddCmd_InvalidDueDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "work", "add",
		"--title", "x", "--skill", "qa", "--effort", "8", "--due", "June 20th")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid due date")
}

func TestAbsenceAddCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	m := &domain.StaffMember{Name: "Alice", Skill: domain.SkillDeveloper, Active: true}
	require.NoError(t, app.Staff.Create(ctx, m))

	_, err := executeCmd(t, app, "absence", "add", "--staff", m.ID, "--date", "2025-06-03")
	require.NoError(t, err)

	absences, err := app.Absences.ListByStaff(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, absences, 1)
}

func TestPlanGenerateCmd_EndToEnd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	require.NoError(t, app.Staff.Create(ctx, &domain.StaffMember{
		Name: "Alice", Skill: domain.SkillDeveloper, Active: true,
	}))
	require.NoError(t, app.WorkItems.Create(ctx, &domain.WorkItem{
		Title: "API endpoint", Skill: domain.SkillDeveloper, EffortHours: 16,
	}))

	_, err := executeCmd(t, app, "plan", "generate")
	require.NoError(t, err)

	entries, err := app.Plan.Schedule(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPlanSimulateCmd_RejectsMalformedDelay(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "simulate", "--delay", "no-equals-sign")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid delay")
}

func TestPlanSimulateCmd_RejectsMalformedBlackout(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "simulate", "--blackout", "staff-only")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid blackout")
}

func TestStatusCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "status")
	require.NoError(t, err)
}

func TestImportCmd_EndToEnd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"staff": [
			{"ref": "alice", "name": "Alice", "skill": "developer"},
			{"ref": "bob", "name": "Bob", "skill": "qa"}
		],
		"work_items": [
			{"ref": "wi1", "title": "API endpoint", "skill": "developer", "effort_hours": 16}
		],
		"absences": [
			{"staff_ref": "alice", "date": "2025-06-03"}
		]
	}`), 0644))

	_, err := executeCmd(t, app, "import", path)
	require.NoError(t, err)

	members, err := app.Staff.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	items, err := app.WorkItems.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	absences, err := app.Absences.List(ctx)
	require.NoError(t, err)
	assert.Len(t, absences, 1)
}

func TestImportCmd_ValidationFailureImportsNothing(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"staff": [{"ref": "alice", "name": "Alice", "skill": "pilot"}]
	}`), 0644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")

	members, err := app.Staff.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestWorkCompleteCmd_UnknownItem(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "work", "complete", "ghost")
	assert.Error(t, err)
}
