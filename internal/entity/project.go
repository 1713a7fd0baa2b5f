package entity

import "time"

type Project struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `json:"status"`
	ManagerID   uint64     `json:"managerId"`
}

type CreateProjectInput struct {
	Name        string     `json:"name" validate:"required"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
	ManagerID   uint64     `json:"managerId"`
}

type UpdateProjectInput struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
	Status      *string    `json:"status" validate:"omitempty,oneof=not_started in_progress completed"`
}
