// Package storage defines the persistence capability set the lifecycle
// logic is written against, plus the Postgres and in-memory
// implementations. Transitions that must be atomic (clock-in, clock-out,
// leave cancel/review) are expressed as conditional writes so a lost race
// surfaces as a domain error instead of a second open row.
package storage

import (
	"context"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

type UserStore interface {
	GetUser(ctx context.Context, id uint64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]entity.User, error)
	ListUsersByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
}

type ProjectStore interface {
	GetProject(ctx context.Context, id uint64) (*entity.Project, error)
	ListProjects(ctx context.Context) ([]entity.Project, error)
	ListProjectsByManager(ctx context.Context, managerID uint64) ([]entity.Project, error)
	CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error)
	UpdateProject(ctx context.Context, id uint64, in entity.UpdateProjectInput) (*entity.Project, error)
}

type TaskStore interface {
	GetTask(ctx context.Context, id uint64) (*entity.Task, error)
	ListTasks(ctx context.Context) ([]entity.Task, error)
	ListTasksByProject(ctx context.Context, projectID uint64) ([]entity.Task, error)
	ListTasksByAssignee(ctx context.Context, assigneeID uint64) ([]entity.Task, error)
	CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error)
	UpdateTask(ctx context.Context, id uint64, in entity.UpdateTaskInput) (*entity.Task, error)
}

type TimeEntryStore interface {
	ListTimeEntries(ctx context.Context) ([]entity.TimeEntry, error)
	ListTimeEntriesByUser(ctx context.Context, userID uint64) ([]entity.TimeEntry, error)

	// GetOpenTimeEntry returns the user's in_progress entry, or (nil, nil)
	// when the user is not clocked in.
	GetOpenTimeEntry(ctx context.Context, userID uint64) (*entity.TimeEntry, error)

	// CreateTimeEntry opens an entry. It fails with
	// entity.ErrAlreadyClockedIn when the user already has an open one;
	// the Postgres implementation backs this with a partial unique index
	// so concurrent clock-ins cannot both succeed.
	CreateTimeEntry(ctx context.Context, entry *entity.TimeEntry) (*entity.TimeEntry, error)

	// CloseTimeEntry completes the entry iff it is still in_progress. It
	// fails with entity.ErrAlreadyCompleted otherwise.
	CloseTimeEntry(ctx context.Context, id uint64, close entity.TimeEntryClose) (*entity.TimeEntry, error)
}

type LeaveRequestStore interface {
	GetLeaveRequest(ctx context.Context, id uint64) (*entity.LeaveRequest, error)
	ListLeaveRequests(ctx context.Context) ([]entity.LeaveRequest, error)
	ListLeaveRequestsByUser(ctx context.Context, userID uint64) ([]entity.LeaveRequest, error)
	ListPendingLeaveRequests(ctx context.Context) ([]entity.LeaveRequest, error)
	CreateLeaveRequest(ctx context.Context, req *entity.LeaveRequest) (*entity.LeaveRequest, error)

	// CancelLeaveRequest and ReviewLeaveRequest transition the request out
	// of pending. Both fail with entity.ErrNotPending when the request has
	// already left the pending state.
	CancelLeaveRequest(ctx context.Context, id uint64) (*entity.LeaveRequest, error)
	ReviewLeaveRequest(ctx context.Context, id uint64, review entity.LeaveReview) (*entity.LeaveRequest, error)
}

// Store is the full capability set handed to the controllers.
type Store interface {
	UserStore
	ProjectStore
	TaskStore
	TimeEntryStore
	LeaveRequestStore
}
