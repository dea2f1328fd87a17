package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func versionRecord(workItemID, generationID string, generatedAt time.Time) domain.VersionRecord {
	start := testutil.Monday()
	return domain.VersionRecord{
		ID:            uuid.New().String(),
		PrevEntryID:   uuid.New().String(),
		WorkItemID:    workItemID,
		StaffID:       "staff-1",
		StaffName:     "Alice",
		WorkItemTitle: "API endpoint",
		Change:        domain.ChangeRescheduled,
		OldStart:      start,
		OldEnd:        start.AddDate(0, 0, 1),
		NewStart:      start.AddDate(0, 0, 2),
		NewEnd:        start.AddDate(0, 0, 3),
		DeltaDays:     2,
		GenerationID:  generationID,
		GeneratedAt:   generatedAt,
	}
}

func TestSQLiteVersionRepo_InsertAndList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVersionRepo(database)
	ctx := context.Background()

	at := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	rec := versionRecord("wi-1", "gen-1", at)
	require.NoError(t, repo.InsertBatch(ctx, []domain.VersionRecord{rec}))

	got, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

func TestSQLiteVersionRepo_List_NewestFirstWithLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVersionRepo(database)
	ctx := context.Background()

	older := versionRecord("wi-1", "gen-1", time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	newer := versionRecord("wi-2", "gen-2", time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC))
	require.NoError(t, repo.InsertBatch(ctx, []domain.VersionRecord{older, newer}))

	got, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "gen-2", got[0].GenerationID)
}

func TestSQLiteVersionRepo_ListByGeneration(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVersionRepo(database)
	ctx := context.Background()

	at := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.InsertBatch(ctx, []domain.VersionRecord{
		versionRecord("wi-1", "gen-1", at),
		versionRecord("wi-2", "gen-1", at),
		versionRecord("wi-1", "gen-2", at.Add(time.Hour)),
	}))

	got, err := repo.ListByGeneration(ctx, "gen-1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSQLiteVersionRepo_ListByWorkItem(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteVersionRepo(database)
	ctx := context.Background()

	at := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.InsertBatch(ctx, []domain.VersionRecord{
		versionRecord("wi-1", "gen-1", at),
		versionRecord("wi-1", "gen-2", at.Add(time.Hour)),
		versionRecord("wi-2", "gen-2", at.Add(time.Hour)),
	}))

	got, err := repo.ListByWorkItem(ctx, "wi-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest generation first
	assert.Equal(t, "gen-2", got[0].GenerationID)
}

func TestSQLiteVersionRepo_SurvivesMasterDeletion(t *testing.T) {
	database := testutil.NewTestDB(t)
	staffRepo := repository.NewSQLiteStaffRepo(database)
	workItemRepo := repository.NewSQLiteWorkItemRepo(database)
	repo := repository.NewSQLiteVersionRepo(database)
	ctx := context.Background()

	member := testutil.NewTestStaff("Alice")
	item := testutil.NewTestWorkItem("API endpoint")
	require.NoError(t, staffRepo.Create(ctx, member))
	require.NoError(t, workItemRepo.Create(ctx, item))

	rec := versionRecord(item.ID, "gen-1", time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC))
	rec.StaffID = member.ID
	require.NoError(t, repo.InsertBatch(ctx, []domain.VersionRecord{rec}))

	require.NoError(t, staffRepo.Delete(ctx, member.ID))
	require.NoError(t, workItemRepo.Delete(ctx, item.ID))

	got, err := repo.ListByWorkItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].StaffName)
}
