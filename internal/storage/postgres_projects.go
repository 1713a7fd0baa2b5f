package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

func (p *Postgres) GetProject(ctx context.Context, id uint64) (*entity.Project, error) {
	project, err := collectOne[entity.Project](p.db.Query(ctx, "SELECT * FROM projects WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return project, nil
}

func (p *Postgres) ListProjects(ctx context.Context) ([]entity.Project, error) {
	projects, err := collectAll[entity.Project](p.db.Query(ctx, "SELECT * FROM projects ORDER BY id"))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (p *Postgres) ListProjectsByManager(ctx context.Context, managerID uint64) ([]entity.Project, error) {
	projects, err := collectAll[entity.Project](p.db.Query(ctx,
		"SELECT * FROM projects WHERE manager_id = $1 ORDER BY id", managerID))
	if err != nil {
		return nil, fmt.Errorf("list projects by manager: %w", err)
	}

	return projects, nil
}

func (p *Postgres) CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	created, err := collectOne[entity.Project](p.db.Query(ctx,
		`INSERT INTO projects (name, description, deadline, status, manager_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING *`,
		project.Name, project.Description, project.Deadline, project.Status, project.ManagerID))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return created, nil
}

func (p *Postgres) UpdateProject(ctx context.Context, id uint64, in entity.UpdateProjectInput) (*entity.Project, error) {
	query := "UPDATE projects SET id = id"
	args := []any{}
	argIdx := 1

	if in.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *in.Name)
		argIdx++
	}

	if in.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *in.Description)
		argIdx++
	}

	if in.Deadline != nil {
		query += fmt.Sprintf(", deadline = $%d", argIdx)
		args = append(args, *in.Deadline)
		argIdx++
	}

	if in.Status != nil {
		query += fmt.Sprintf(", status = $%d", argIdx)
		args = append(args, *in.Status)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING *", argIdx)
	args = append(args, id)

	project, err := collectOne[entity.Project](p.db.Query(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	return project, nil
}

func (p *Postgres) GetTask(ctx context.Context, id uint64) (*entity.Task, error) {
	task, err := collectOne[entity.Task](p.db.Query(ctx, "SELECT * FROM tasks WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return task, nil
}

func (p *Postgres) ListTasks(ctx context.Context) ([]entity.Task, error) {
	tasks, err := collectAll[entity.Task](p.db.Query(ctx, "SELECT * FROM tasks ORDER BY id"))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (p *Postgres) ListTasksByProject(ctx context.Context, projectID uint64) ([]entity.Task, error) {
	tasks, err := collectAll[entity.Task](p.db.Query(ctx,
		"SELECT * FROM tasks WHERE project_id = $1 ORDER BY id", projectID))
	if err != nil {
		return nil, fmt.Errorf("list tasks by project: %w", err)
	}

	return tasks, nil
}

func (p *Postgres) ListTasksByAssignee(ctx context.Context, assigneeID uint64) ([]entity.Task, error) {
	tasks, err := collectAll[entity.Task](p.db.Query(ctx,
		"SELECT * FROM tasks WHERE assignee_id = $1 ORDER BY id", assigneeID))
	if err != nil {
		return nil, fmt.Errorf("list tasks by assignee: %w", err)
	}

	return tasks, nil
}

func (p *Postgres) CreateTask(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	created, err := collectOne[entity.Task](p.db.Query(ctx,
		`INSERT INTO tasks (title, description, project_id, assignee_id, status, priority, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING *`,
		task.Title, task.Description, task.ProjectID, task.AssigneeID, task.Status, task.Priority, task.DueDate))
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return created, nil
}

func (p *Postgres) UpdateTask(ctx context.Context, id uint64, in entity.UpdateTaskInput) (*entity.Task, error) {
	query := "UPDATE tasks SET id = id"
	args := []any{}
	argIdx := 1

	if in.Title != nil {
		query += fmt.Sprintf(", title = $%d", argIdx)
		args = append(args, *in.Title)
		argIdx++
	}

	if in.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *in.Description)
		argIdx++
	}

	if in.ProjectID != nil {
		query += fmt.Sprintf(", project_id = $%d", argIdx)
		args = append(args, *in.ProjectID)
		argIdx++
	}

	if in.AssigneeID != nil {
		query += fmt.Sprintf(", assignee_id = $%d", argIdx)
		args = append(args, *in.AssigneeID)
		argIdx++
	}

	if in.Status != nil {
		query += fmt.Sprintf(", status = $%d", argIdx)
		args = append(args, *in.Status)
		argIdx++
	}

	if in.Priority != nil {
		query += fmt.Sprintf(", priority = $%d", argIdx)
		args = append(args, *in.Priority)
		argIdx++
	}

	if in.DueDate != nil {
		query += fmt.Sprintf(", due_date = $%d", argIdx)
		args = append(args, *in.DueDate)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d RETURNING *", argIdx)
	args = append(args, id)

	task, err := collectOne[entity.Task](p.db.Query(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	return task, nil
}
