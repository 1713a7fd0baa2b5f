package controllers

import (
	"github.com/worktrack-io/workforce_service/internal/entity"
)

// Access predicates. Each operation has exactly one predicate; all of
// them are pure functions of (actor role, actor id, record) so repeated
// calls on unchanged data always agree.

// CanListUsers reports whether the actor may read the user directory.
func CanListUsers(role entity.Role) bool {
	return role == entity.RoleManager || role == entity.RoleAdmin
}

// CanCreateProject reports whether the actor may create projects.
func CanCreateProject(role entity.Role) bool {
	return role == entity.RoleManager || role == entity.RoleAdmin
}

// CanMutateProject reports whether the actor may update the project:
// its manager, or an admin (unscoped).
func CanMutateProject(actor *entity.Claims, project *entity.Project) bool {
	return actor.Role == entity.RoleAdmin || project.ManagerID == actor.ID
}

// CanReviewLeave reports whether the actor role may approve or reject
// leave requests.
func CanReviewLeave(role entity.Role) bool {
	return role == entity.RoleManager || role == entity.RoleAdmin
}

// OwnsLeaveRequest reports whether the actor is the request owner.
func OwnsLeaveRequest(actorID uint64, req *entity.LeaveRequest) bool {
	return req.UserID == actorID
}

// OwnsTask reports whether the actor is the task assignee.
func OwnsTask(actorID uint64, task *entity.Task) bool {
	return task.AssigneeID != nil && *task.AssigneeID == actorID
}
