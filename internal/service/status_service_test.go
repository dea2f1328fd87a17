package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/crewplan/internal/contract"
	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/service"
	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusHarness(t *testing.T) (*planHarness, service.StatusService) {
	t.Helper()
	h := newPlanHarness(t)
	status := service.NewStatusService(h.staffRepo, h.workItemRepo, h.absenceRepo, h.scheduleRepo)
	return h, status
}

func TestStatusService_EmptyDatabaseIsFresh(t *testing.T) {
	_, status := newStatusHarness(t)

	stale, err := status.NeedsRegeneration(context.Background())
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestStatusService_MastersWithoutScheduleAreStale(t *testing.T) {
	h, status := newStatusHarness(t)
	h.addStaff(t, "Alice", domain.SkillDeveloper)

	stale, err := status.NeedsRegeneration(context.Background())
	require.NoError(t, err)
	assert.True(t, stale)
}

func TestStatusService_FreshAfterGeneration(t *testing.T) {
	h, status := newStatusHarness(t)
	h.addStaff(t, "Alice", domain.SkillDeveloper)
	h.addWorkItem(t, "API endpoint", domain.SkillDeveloper, 8)

	// Generate on the real clock so the schedule's persisted timestamps are
	// not older than the masters created above.
	generateAt(t, h, time.Now().UTC(), contract.GenerateRequest{})

	stale, err := status.NeedsRegeneration(context.Background())
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestStatusService_StaleAfterLaterMasterChange(t *testing.T) {
	h, status := newStatusHarness(t)
	ctx := context.Background()
	member := h.addStaff(t, "Alice", domain.SkillDeveloper)
	h.addWorkItem(t, "API endpoint", domain.SkillDeveloper, 8)

	generateAt(t, h, time.Now().UTC(), contract.GenerateRequest{})

	// An absence recorded after the generation marks the schedule stale.
	a := testutil.NewTestAbsence(member.ID, testutil.Monday().AddDate(0, 0, 1))
	a.CreatedAt = time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	require.NoError(t, h.absenceRepo.Create(ctx, a))

	stale, err := status.NeedsRegeneration(ctx)
	require.NoError(t, err)
	assert.True(t, stale)
}

func TestStatusService_PropagatesRepoErrors(t *testing.T) {
	database := testutil.NewTestDB(t)
	require.NoError(t, database.Close())

	status := service.NewStatusService(
		repository.NewSQLiteStaffRepo(database),
		repository.NewSQLiteWorkItemRepo(database),
		repository.NewSQLiteAbsenceRepo(database),
		repository.NewSQLiteScheduleRepo(database),
	)

	_, err := status.NeedsRegeneration(context.Background())
	assert.Error(t, err)
}
