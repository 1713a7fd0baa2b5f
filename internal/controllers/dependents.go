package controllers

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/worktrack-io/workforce_service/internal/config"
	"github.com/worktrack-io/workforce_service/internal/storage"
)

type Controllers struct {
	Auth        *AuthController
	Users       *UserController
	Projects    *ProjectController
	Tasks       *TaskController
	TimeEntries *TimeEntryController
	Leave       *LeaveController
}

func NewControllers(deps *Dependens) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(deps),
		Users:       NewUserController(deps),
		Projects:    NewProjectController(deps),
		Tasks:       NewTaskController(deps),
		TimeEntries: NewTimeEntryController(deps),
		Leave:       NewLeaveController(deps),
	}
}

type Dependens struct {
	Store storage.Store
	Redis interface {
		Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
		Get(ctx context.Context, key string) *redis.StringCmd
		Del(ctx context.Context, keys ...string) *redis.IntCmd
	}
	Logger *slog.Logger
	Config *config.Config
}
