package controllers

import (
	"context"
	"log/slog"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

type ProjectController struct {
	deps *Dependens
}

func NewProjectController(deps *Dependens) *ProjectController {
	return &ProjectController{
		deps: deps,
	}
}

// List returns the projects visible to the actor: managers their own,
// admins everything, employees none.
func (c *ProjectController) List(ctx context.Context, actor *entity.Claims) ([]entity.Project, error) {
	switch actor.Role {
	case entity.RoleManager:
		return c.deps.Store.ListProjectsByManager(ctx, actor.ID)
	case entity.RoleAdmin:
		return c.deps.Store.ListProjects(ctx)
	default:
		return []entity.Project{}, nil
	}
}

// Create adds a project. Managers always become the manager of record for
// projects they create; admins may assign any manager.
func (c *ProjectController) Create(ctx context.Context, actor *entity.Claims, in *entity.CreateProjectInput) (*entity.Project, error) {
	if !CanCreateProject(actor.Role) {
		return nil, entity.ErrForbidden
	}

	managerID := in.ManagerID
	if actor.Role == entity.RoleManager || managerID == 0 {
		managerID = actor.ID
	}

	status := in.Status
	if status == "" {
		status = "in_progress"
	}

	project, err := c.deps.Store.CreateProject(ctx, &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		Deadline:    in.Deadline,
		Status:      status,
		ManagerID:   managerID,
	})
	if err != nil {
		c.deps.Logger.Error("Error creating project", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Project created", slog.Uint64("project_id", project.ID), slog.Uint64("manager_id", managerID))

	return project, nil
}

// Update modifies a project; allowed for its manager and for admins.
func (c *ProjectController) Update(ctx context.Context, actor *entity.Claims, id uint64, in *entity.UpdateProjectInput) (*entity.Project, error) {
	project, err := c.deps.Store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanMutateProject(actor, project) {
		return nil, entity.ErrForbidden
	}

	updated, err := c.deps.Store.UpdateProject(ctx, id, *in)
	if err != nil {
		c.deps.Logger.Error("Error updating project", slog.String("error", err.Error()))
		return nil, err
	}

	return updated, nil
}
