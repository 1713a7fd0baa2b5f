package entity

import "time"

type Task struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ProjectID   *uint64    `json:"projectId"`
	AssigneeID  *uint64    `json:"assigneeId"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

type CreateTaskInput struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	ProjectID   *uint64    `json:"projectId"`
	AssigneeID  *uint64    `json:"assigneeId"`
	Status      string     `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskInput carries only the fields a task update may touch. For
// employee actors everything except Status is ignored.
type UpdateTaskInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ProjectID   *uint64    `json:"projectId"`
	AssigneeID  *uint64    `json:"assigneeId"`
	Status      *string    `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}
