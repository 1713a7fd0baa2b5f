package controllers

import (
	"context"
	"log/slog"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

type UserController struct {
	deps *Dependens
}

func NewUserController(deps *Dependens) *UserController {
	return &UserController{
		deps: deps,
	}
}

// List returns the user directory: managers see employees only, admins
// see everyone, employees are denied.
func (c *UserController) List(ctx context.Context, actor *entity.Claims) ([]entity.User, error) {
	if !CanListUsers(actor.Role) {
		return nil, entity.ErrForbidden
	}

	if actor.Role == entity.RoleManager {
		users, err := c.deps.Store.ListUsersByRole(ctx, entity.RoleEmployee)
		if err != nil {
			c.deps.Logger.Error("Error listing users", slog.String("error", err.Error()))
			return nil, err
		}

		return users, nil
	}

	users, err := c.deps.Store.ListUsers(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing users", slog.String("error", err.Error()))
		return nil, err
	}

	return users, nil
}
