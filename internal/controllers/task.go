package controllers

import (
	"context"
	"log/slog"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

type TaskController struct {
	deps *Dependens
}

func NewTaskController(deps *Dependens) *TaskController {
	return &TaskController{
		deps: deps,
	}
}

// List returns the tasks visible to the actor: employees their assigned
// tasks, managers the tasks of projects they manage, admins everything.
func (c *TaskController) List(ctx context.Context, actor *entity.Claims) ([]entity.Task, error) {
	switch actor.Role {
	case entity.RoleEmployee:
		return c.deps.Store.ListTasksByAssignee(ctx, actor.ID)
	case entity.RoleManager:
		return c.listForManager(ctx, actor.ID)
	default:
		return c.deps.Store.ListTasks(ctx)
	}
}

func (c *TaskController) listForManager(ctx context.Context, managerID uint64) ([]entity.Task, error) {
	projects, err := c.deps.Store.ListProjectsByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	tasks := []entity.Task{}
	for _, project := range projects {
		projectTasks, tasksErr := c.deps.Store.ListTasksByProject(ctx, project.ID)
		if tasksErr != nil {
			return nil, tasksErr
		}

		tasks = append(tasks, projectTasks...)
	}

	return tasks, nil
}

// Create adds a task. Employees may only self-assign; managers may only
// add tasks to projects they manage.
func (c *TaskController) Create(ctx context.Context, actor *entity.Claims, in *entity.CreateTaskInput) (*entity.Task, error) {
	if actor.Role == entity.RoleEmployee {
		actorID := actor.ID
		in.AssigneeID = &actorID
	} else if actor.Role == entity.RoleManager && in.ProjectID != nil {
		project, err := c.deps.Store.GetProject(ctx, *in.ProjectID)
		if err != nil {
			return nil, err
		}

		if project.ManagerID != actor.ID {
			return nil, entity.ErrForbidden
		}
	}

	status := in.Status
	if status == "" {
		status = "not_started"
	}

	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}

	task, err := c.deps.Store.CreateTask(ctx, &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		AssigneeID:  in.AssigneeID,
		Status:      status,
		Priority:    priority,
		DueDate:     in.DueDate,
	})
	if err != nil {
		c.deps.Logger.Error("Error creating task", slog.String("error", err.Error()))
		return nil, err
	}

	return task, nil
}

// Update modifies a task. Employees may only change the status of their
// own tasks; managers may change tasks of projects they manage; admins
// are unscoped.
func (c *TaskController) Update(ctx context.Context, actor *entity.Claims, id uint64, in *entity.UpdateTaskInput) (*entity.Task, error) {
	task, err := c.deps.Store.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role == entity.RoleEmployee {
		if !OwnsTask(actor.ID, task) {
			return nil, entity.ErrForbidden
		}

		// Status is the only field an assignee may touch.
		updated, updateErr := c.deps.Store.UpdateTask(ctx, id, entity.UpdateTaskInput{Status: in.Status})
		if updateErr != nil {
			c.deps.Logger.Error("Error updating task", slog.String("error", updateErr.Error()))
			return nil, updateErr
		}

		return updated, nil
	}

	if actor.Role == entity.RoleManager && task.ProjectID != nil {
		project, projectErr := c.deps.Store.GetProject(ctx, *task.ProjectID)
		if projectErr != nil {
			return nil, projectErr
		}

		if project.ManagerID != actor.ID {
			return nil, entity.ErrForbidden
		}
	}

	updated, err := c.deps.Store.UpdateTask(ctx, id, *in)
	if err != nil {
		c.deps.Logger.Error("Error updating task", slog.String("error", err.Error()))
		return nil, err
	}

	return updated, nil
}
