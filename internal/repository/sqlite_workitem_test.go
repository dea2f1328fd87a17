package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/crewplan/internal/domain"
	"github.com/alexanderramin/crewplan/internal/repository"
	"github.com/alexanderramin/crewplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteWorkItemRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)
	ctx := context.Background()

	due := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	item := testutil.NewTestWorkItem("API endpoint",
		testutil.WithRequiredSkill(domain.SkillDeveloper),
		testutil.WithEffort(16),
		testutil.WithDueDate(due),
		testutil.WithClient("globex"),
	)
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "API endpoint", got.Title)
	assert.Equal(t, "globex", got.Client)
	assert.Equal(t, 16, got.EffortHours)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
}

func TestSQLiteWorkItemRepo_NilDueDateRoundTrips(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("No deadline")
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestSQLiteWorkItemRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteWorkItemRepo_Create_RejectsNonPositiveEffort(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)

	item := testutil.NewTestWorkItem("Free work")
	item.EffortHours = 0
	assert.Error(t, repo.Create(context.Background(), item))
}

func TestSQLiteWorkItemRepo_List(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("One")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkItem("Two")))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestSQLiteWorkItemRepo_UpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkItemRepo(database)
	ctx := context.Background()

	item := testutil.NewTestWorkItem("Draft")
	require.NoError(t, repo.Create(ctx, item))

	item.Title = "Final"
	item.EffortHours = 40
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, 40, got.EffortHours)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
