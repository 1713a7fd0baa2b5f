package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

func TestTimeEntryController_ClockIn(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewTimeEntryController(deps)
	user := seedUser(t, store, "jdoe", entity.RoleEmployee)
	actor := claimsFor(user)

	entry, err := ctrl.ClockIn(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, entity.TimeEntryInProgress, entry.Status)
	assert.Nil(t, entry.ClockOut)
	assert.Nil(t, entry.TotalHours)
	assert.WithinDuration(t, time.Now(), entry.ClockIn, time.Second)
}

func TestTimeEntryController_ClockIn_Twice(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewTimeEntryController(deps)
	actor := claimsFor(seedUser(t, store, "jdoe", entity.RoleEmployee))

	_, err := ctrl.ClockIn(context.Background(), actor)
	require.NoError(t, err)

	_, err = ctrl.ClockIn(context.Background(), actor)
	assert.ErrorIs(t, err, entity.ErrAlreadyClockedIn)

	// Still exactly one open entry.
	entries, err := store.ListTimeEntriesByUser(context.Background(), actor.ID)
	require.NoError(t, err)
	open := 0
	for _, e := range entries {
		if e.Status == entity.TimeEntryInProgress {
			open++
		}
	}
	assert.Equal(t, 1, open)
}

func TestTimeEntryController_ClockOut_NotClockedIn(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewTimeEntryController(deps)
	actor := claimsFor(seedUser(t, store, "jdoe", entity.RoleEmployee))

	_, err := ctrl.ClockOut(context.Background(), actor, &entity.ClockOutInput{})
	assert.ErrorIs(t, err, entity.ErrNotClockedIn)
}

func TestTimeEntryController_ClockOut(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewTimeEntryController(deps)
	actor := claimsFor(seedUser(t, store, "jdoe", entity.RoleEmployee))

	// Entry opened two and a half hours ago.
	_, err := store.CreateTimeEntry(context.Background(), &entity.TimeEntry{
		UserID:  actor.ID,
		ClockIn: time.Now().Add(-150 * time.Minute),
		Status:  entity.TimeEntryInProgress,
	})
	require.NoError(t, err)

	entry, err := ctrl.ClockOut(context.Background(), actor, &entity.ClockOutInput{Notes: "done for today"})
	require.NoError(t, err)
	assert.Equal(t, entity.TimeEntryCompleted, entry.Status)
	require.NotNil(t, entry.ClockOut)
	require.NotNil(t, entry.TotalHours)
	assert.InDelta(t, 2.5, *entry.TotalHours, 0.01)
	require.NotNil(t, entry.Notes)
	assert.Equal(t, "done for today", *entry.Notes)

	_, err = ctrl.ClockOut(context.Background(), actor, &entity.ClockOutInput{})
	assert.ErrorIs(t, err, entity.ErrNotClockedIn)
}

func TestTimeEntryController_ClockOut_HoursNonNegative(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewTimeEntryController(deps)
	actor := claimsFor(seedUser(t, store, "jdoe", entity.RoleEmployee))

	_, err := ctrl.ClockIn(context.Background(), actor)
	require.NoError(t, err)

	entry, err := ctrl.ClockOut(context.Background(), actor, &entity.ClockOutInput{})
	require.NoError(t, err)
	require.NotNil(t, entry.TotalHours)
	assert.GreaterOrEqual(t, *entry.TotalHours, 0.0)
}

func TestTimeEntryController_List(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewTimeEntryController(deps)
	ctx := context.Background()

	manager := seedUser(t, store, "manager", entity.RoleManager)
	worker := seedUser(t, store, "worker", entity.RoleEmployee)
	outsider := seedUser(t, store, "outsider", entity.RoleEmployee)
	admin := seedUser(t, store, "admin", entity.RoleAdmin)

	project, err := store.CreateProject(ctx, &entity.Project{Name: "ERP Upgrade", Status: "in_progress", ManagerID: manager.ID})
	require.NoError(t, err)

	_, err = store.CreateTask(ctx, &entity.Task{
		Title: "Migrate schema", ProjectID: &project.ID, AssigneeID: &worker.ID,
		Status: "in_progress", Priority: "high",
	})
	require.NoError(t, err)

	for _, u := range []*entity.User{worker, outsider} {
		_, err = store.CreateTimeEntry(ctx, &entity.TimeEntry{
			UserID: u.ID, ClockIn: time.Now(), Status: entity.TimeEntryInProgress,
		})
		require.NoError(t, err)
	}

	// Employees see only their own entries.
	entries, err := ctrl.List(ctx, claimsFor(worker))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, worker.ID, entries[0].UserID)

	// Managers see entries of assignees on projects they manage; the
	// outsider has no task on the manager's project.
	entries, err = ctrl.List(ctx, claimsFor(manager))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, worker.ID, entries[0].UserID)

	// Admins see everything.
	entries, err = ctrl.List(ctx, claimsFor(admin))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTimeEntryController_Current(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewTimeEntryController(deps)
	actor := claimsFor(seedUser(t, store, "jdoe", entity.RoleEmployee))

	entry, err := ctrl.Current(context.Background(), actor)
	require.NoError(t, err)
	assert.Nil(t, entry)

	_, err = ctrl.ClockIn(context.Background(), actor)
	require.NoError(t, err)

	entry, err = ctrl.Current(context.Background(), actor)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, entity.TimeEntryInProgress, entry.Status)
}
