package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

func seedMemoryUser(t *testing.T, m *Memory, username string) *entity.User {
	t.Helper()

	user, err := m.CreateUser(context.Background(), &entity.User{
		Username:     username,
		PasswordHash: "x",
		Name:         username,
		Email:        username + "@example.com",
		Role:         entity.RoleEmployee,
	})
	require.NoError(t, err)

	return user
}

func TestMemory_CreateUser_UniqueUsername(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	seedMemoryUser(t, m, "jdoe")

	_, err := m.CreateUser(ctx, &entity.User{
		Username: "jdoe", PasswordHash: "y", Name: "Other", Email: "other@example.com",
		Role: entity.RoleEmployee,
	})
	assert.ErrorIs(t, err, entity.ErrUsernameTaken)
}

func TestMemory_CreateTimeEntry_SingleOpenEntry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	user := seedMemoryUser(t, m, "jdoe")

	_, err := m.CreateTimeEntry(ctx, &entity.TimeEntry{
		UserID: user.ID, ClockIn: time.Now(), Status: entity.TimeEntryInProgress,
	})
	require.NoError(t, err)

	_, err = m.CreateTimeEntry(ctx, &entity.TimeEntry{
		UserID: user.ID, ClockIn: time.Now(), Status: entity.TimeEntryInProgress,
	})
	assert.ErrorIs(t, err, entity.ErrAlreadyClockedIn)
}

func TestMemory_CreateTimeEntry_ConcurrentClockIns(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	user := seedMemoryUser(t, m, "jdoe")

	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = m.CreateTimeEntry(ctx, &entity.TimeEntry{
				UserID: user.ID, ClockIn: time.Now(), Status: entity.TimeEntryInProgress,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, entity.ErrAlreadyClockedIn)
		}
	}
	assert.Equal(t, 1, succeeded)

	entries, err := m.ListTimeEntriesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemory_CloseTimeEntry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	user := seedMemoryUser(t, m, "jdoe")

	entry, err := m.CreateTimeEntry(ctx, &entity.TimeEntry{
		UserID: user.ID, ClockIn: time.Now().Add(-time.Hour), Status: entity.TimeEntryInProgress,
	})
	require.NoError(t, err)

	closed, err := m.CloseTimeEntry(ctx, entry.ID, entity.TimeEntryClose{
		ClockOut: time.Now(), TotalHours: 1.0, Notes: "wrap up",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TimeEntryCompleted, closed.Status)
	require.NotNil(t, closed.TotalHours)
	assert.Equal(t, 1.0, *closed.TotalHours)
	require.NotNil(t, closed.Notes)
	assert.Equal(t, "wrap up", *closed.Notes)

	// A second close is a no-op failure, the entry stays completed.
	_, err = m.CloseTimeEntry(ctx, entry.ID, entity.TimeEntryClose{
		ClockOut: time.Now(), TotalHours: 2.0,
	})
	assert.ErrorIs(t, err, entity.ErrAlreadyCompleted)

	// And the user can open a fresh entry again.
	_, err = m.CreateTimeEntry(ctx, &entity.TimeEntry{
		UserID: user.ID, ClockIn: time.Now(), Status: entity.TimeEntryInProgress,
	})
	assert.NoError(t, err)
}

func TestMemory_CloseTimeEntry_EmptyNotes(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	user := seedMemoryUser(t, m, "jdoe")

	entry, err := m.CreateTimeEntry(ctx, &entity.TimeEntry{
		UserID: user.ID, ClockIn: time.Now(), Status: entity.TimeEntryInProgress,
	})
	require.NoError(t, err)

	closed, err := m.CloseTimeEntry(ctx, entry.ID, entity.TimeEntryClose{ClockOut: time.Now()})
	require.NoError(t, err)
	assert.Nil(t, closed.Notes)
}

func TestMemory_LeaveRequestTransitions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	user := seedMemoryUser(t, m, "jdoe")
	reviewer := seedMemoryUser(t, m, "reviewer")

	req, err := m.CreateLeaveRequest(ctx, &entity.LeaveRequest{
		UserID: user.ID, Type: "annual",
		StartDate: time.Now(), EndDate: time.Now().Add(48 * time.Hour),
		Status: entity.LeavePending, RequestedOn: time.Now(),
	})
	require.NoError(t, err)

	reviewed, err := m.ReviewLeaveRequest(ctx, req.ID, entity.LeaveReview{
		Decision: entity.LeaveApproved, ReviewerID: reviewer.ID, ReviewedOn: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveApproved, reviewed.Status)

	// Pending is the only state that transitions.
	_, err = m.ReviewLeaveRequest(ctx, req.ID, entity.LeaveReview{
		Decision: entity.LeaveRejected, ReviewerID: reviewer.ID, ReviewedOn: time.Now(),
	})
	assert.ErrorIs(t, err, entity.ErrNotPending)

	_, err = m.CancelLeaveRequest(ctx, req.ID)
	assert.ErrorIs(t, err, entity.ErrNotPending)
}

func TestMemory_ListPendingLeaveRequests(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	user := seedMemoryUser(t, m, "jdoe")

	base := time.Now()
	for i, status := range []string{entity.LeavePending, entity.LeaveApproved, entity.LeavePending} {
		_, err := m.CreateLeaveRequest(ctx, &entity.LeaveRequest{
			UserID: user.ID, Type: "annual",
			StartDate: base, EndDate: base.Add(24 * time.Hour),
			Status: status, RequestedOn: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	pending, err := m.ListPendingLeaveRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	// Oldest request first.
	assert.True(t, pending[0].RequestedOn.Before(pending[1].RequestedOn))
}
