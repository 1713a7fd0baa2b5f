package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

func TestUserController_List(t *testing.T) {
	deps, store := newTestDeps(&stubRedis{})
	ctrl := NewUserController(deps)
	ctx := context.Background()

	manager := claimsFor(seedUser(t, store, "manager", entity.RoleManager))
	admin := claimsFor(seedUser(t, store, "admin", entity.RoleAdmin))
	employee := claimsFor(seedUser(t, store, "alice", entity.RoleEmployee))
	seedUser(t, store, "bob", entity.RoleEmployee)

	_, err := ctrl.List(ctx, employee)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	// Managers see the employee directory only.
	users, err := ctrl.List(ctx, manager)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, entity.RoleEmployee, u.Role)
	}

	users, err = ctrl.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, users, 4)
}

func TestAccessPredicates(t *testing.T) {
	assert.False(t, CanListUsers(entity.RoleEmployee))
	assert.True(t, CanListUsers(entity.RoleManager))
	assert.True(t, CanListUsers(entity.RoleAdmin))

	assert.False(t, CanCreateProject(entity.RoleEmployee))
	assert.True(t, CanCreateProject(entity.RoleManager))

	assert.False(t, CanReviewLeave(entity.RoleEmployee))
	assert.True(t, CanReviewLeave(entity.RoleManager))
	assert.True(t, CanReviewLeave(entity.RoleAdmin))

	project := &entity.Project{ID: 1, ManagerID: 7}
	assert.True(t, CanMutateProject(&entity.Claims{ID: 7, Role: entity.RoleManager}, project))
	assert.False(t, CanMutateProject(&entity.Claims{ID: 8, Role: entity.RoleManager}, project))
	assert.True(t, CanMutateProject(&entity.Claims{ID: 8, Role: entity.RoleAdmin}, project))

	req := &entity.LeaveRequest{ID: 1, UserID: 7}
	assert.True(t, OwnsLeaveRequest(7, req))
	assert.False(t, OwnsLeaveRequest(8, req))

	assigned := uint64(7)
	assert.True(t, OwnsTask(7, &entity.Task{AssigneeID: &assigned}))
	assert.False(t, OwnsTask(8, &entity.Task{AssigneeID: &assigned}))
	assert.False(t, OwnsTask(7, &entity.Task{}))
}
