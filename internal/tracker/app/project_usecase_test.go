package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/tracker/adapters/memory"
	"planboard/internal/tracker/app"
	"planboard/internal/tracker/domain/entities"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// projectFixture поднимает usecase на изолированных хранилищах с одним
// зарегистрированным руководителем.
func projectFixture(t *testing.T) (*app.ProjectUseCase, *memory.ProjectRepository, *entities.User) {
	t.Helper()

	users := memory.NewUserRepository()
	projects := memory.NewProjectRepository()

	manager := entities.NewUser("Ana Silva", "123.456.789-09", "ana@x.com", "Lead", "asilva", "senha123", entities.RoleManager)
	require.NoError(t, users.Add(context.Background(), manager))

	return app.NewProjectUseCase(projects, users), projects, manager
}

func TestProjectRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, projects, manager := projectFixture(t)

		project := entities.NewProject("Site", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), manager.ID)
		require.NoError(t, uc.Register(ctx, project))

		stored, err := projects.FindByName(ctx, "Site")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusPlanned, stored.Status)
	})

	t.Run("duplicate name", func(t *testing.T) {
		uc, _, manager := projectFixture(t)

		first := entities.NewProject("Site", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), manager.ID)
		require.NoError(t, uc.Register(ctx, first))

		second := entities.NewProject("site", "Another description here", day(2099, 3, 1), day(2099, 4, 1), manager.ID)
		err := uc.Register(ctx, second)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrProjectNameTaken)
		assert.ErrorIs(t, err, entities.ErrConflict)
	})

	t.Run("start after end", func(t *testing.T) {
		uc, _, manager := projectFixture(t)

		project := entities.NewProject("Site", "Rebuild marketing site", day(2099, 2, 1), day(2099, 1, 1), manager.ID)
		err := uc.Register(ctx, project)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrStartAfterEnd)
		assert.ErrorIs(t, err, entities.ErrValidation)
	})

	t.Run("start in the past", func(t *testing.T) {
		uc, _, manager := projectFixture(t)

		project := entities.NewProject("Site", "Rebuild marketing site", day(2020, 1, 1), day(2099, 1, 1), manager.ID)
		err := uc.Register(ctx, project)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrStartInPast)
	})

	t.Run("missing dates", func(t *testing.T) {
		uc, _, manager := projectFixture(t)

		project := entities.NewProject("Site", "Rebuild marketing site", time.Time{}, day(2099, 1, 1), manager.ID)
		err := uc.Register(ctx, project)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrMissingDates)
	})

	t.Run("manager required", func(t *testing.T) {
		uc, _, _ := projectFixture(t)

		project := entities.NewProject("Site", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), "")
		err := uc.Register(ctx, project)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrManagerRequired)
	})

	t.Run("manager must be registered", func(t *testing.T) {
		uc, _, _ := projectFixture(t)

		project := entities.NewProject("Site", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), "ghost-id")
		err := uc.Register(ctx, project)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrManagerNotFound)
	})

	t.Run("short name and description", func(t *testing.T) {
		uc, _, manager := projectFixture(t)

		short := entities.NewProject("Si", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), manager.ID)
		assert.ErrorIs(t, uc.Register(ctx, short), entities.ErrInvalidName)

		brief := entities.NewProject("Site", "too short", day(2099, 1, 1), day(2099, 2, 1), manager.ID)
		assert.ErrorIs(t, uc.Register(ctx, brief), entities.ErrInvalidDescription)
	})
}

func TestProjectUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("any status is reachable", func(t *testing.T) {
		uc, projects, manager := projectFixture(t)

		project := entities.NewProject("Site", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), manager.ID)
		require.NoError(t, uc.Register(ctx, project))

		for _, status := range []entities.ProjectStatus{
			entities.StatusCompleted,
			entities.StatusPlanned,
			entities.StatusCancelled,
			entities.StatusInProgress,
		} {
			require.NoError(t, uc.UpdateStatus(ctx, "Site", status))

			stored, err := projects.FindByName(ctx, "Site")
			require.NoError(t, err)
			assert.Equal(t, status, stored.Status)
		}
	})

	t.Run("unknown project reports failure", func(t *testing.T) {
		uc, _, _ := projectFixture(t)

		err := uc.UpdateStatus(ctx, "Missing", entities.StatusCompleted)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrProjectNotFound)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	t.Run("unknown status", func(t *testing.T) {
		uc, _, _ := projectFixture(t)

		err := uc.UpdateStatus(ctx, "Site", "PAUSED")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUnknownStatus)
	})
}

func TestProjectQueries(t *testing.T) {
	ctx := context.Background()
	uc, projects, manager := projectFixture(t)

	site := entities.NewProject("Site", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), manager.ID)
	require.NoError(t, uc.Register(ctx, site))

	mobile := entities.NewProject("App", "Internal mobile application", day(2099, 3, 1), day(2099, 6, 1), manager.ID)
	require.NoError(t, uc.Register(ctx, mobile))
	require.NoError(t, uc.UpdateStatus(ctx, "App", entities.StatusInProgress))

	t.Run("list by manager resolves identifier", func(t *testing.T) {
		managed, err := uc.ListByManager(ctx, manager.CPF)
		require.NoError(t, err)
		assert.Len(t, managed, 2)
	})

	t.Run("list by unknown manager", func(t *testing.T) {
		_, err := uc.ListByManager(ctx, "99999999999")
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("list by date range", func(t *testing.T) {
		ranged, err := uc.ListByDateRange(ctx, day(2099, 1, 1), day(2099, 2, 1))
		require.NoError(t, err)
		require.Len(t, ranged, 1)
		assert.Equal(t, "Site", ranged[0].Name)
	})

	t.Run("late projects surface through the service", func(t *testing.T) {
		// Просроченный проект появляется в хранилище только со временем,
		// поэтому затравка идет мимо валидации регистрации.
		overdue := entities.NewProject("Legacy", "Abandoned legacy rewrite", day(2020, 1, 1), day(2020, 6, 1), manager.ID)
		require.NoError(t, projects.Add(ctx, overdue))

		late, err := uc.ListLate(ctx)
		require.NoError(t, err)
		require.Len(t, late, 1)
		assert.Equal(t, "Legacy", late[0].Name)

		require.NoError(t, uc.UpdateStatus(ctx, "Legacy", entities.StatusCompleted))
		late, err = uc.ListLate(ctx)
		require.NoError(t, err)
		assert.Empty(t, late)
	})

	t.Run("counts", func(t *testing.T) {
		assert.Equal(t, 3, uc.Count(ctx))
		assert.Equal(t, 1, uc.CountByStatus(ctx, entities.StatusPlanned))
		assert.Equal(t, 1, uc.CountByStatus(ctx, entities.StatusInProgress))
	})
}

func TestProjectRemove(t *testing.T) {
	ctx := context.Background()
	uc, _, manager := projectFixture(t)

	project := entities.NewProject("Site", "Rebuild marketing site", day(2099, 1, 1), day(2099, 2, 1), manager.ID)
	require.NoError(t, uc.Register(ctx, project))

	require.NoError(t, uc.Remove(ctx, "site"))
	assert.Equal(t, 0, uc.Count(ctx))

	err := uc.Remove(ctx, "Site")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
