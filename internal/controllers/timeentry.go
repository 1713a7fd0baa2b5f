package controllers

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

type TimeEntryController struct {
	deps *Dependens
}

func NewTimeEntryController(deps *Dependens) *TimeEntryController {
	return &TimeEntryController{
		deps: deps,
	}
}

// ClockIn opens a time entry for the actor. At most one entry per user
// may be in_progress; the storage layer enforces this atomically, so the
// pre-check here only produces the friendly error on the common path.
func (c *TimeEntryController) ClockIn(ctx context.Context, actor *entity.Claims) (*entity.TimeEntry, error) {
	open, err := c.deps.Store.GetOpenTimeEntry(ctx, actor.ID)
	if err != nil {
		c.deps.Logger.Error("Error checking open time entry", slog.String("error", err.Error()))
		return nil, err
	}

	if open != nil {
		return nil, entity.ErrAlreadyClockedIn
	}

	entry, err := c.deps.Store.CreateTimeEntry(ctx, &entity.TimeEntry{
		UserID:  actor.ID,
		ClockIn: time.Now(),
		Status:  entity.TimeEntryInProgress,
	})
	if err != nil {
		c.deps.Logger.Error("Error creating time entry", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Clocked in", slog.Uint64("user_id", actor.ID), slog.Uint64("entry_id", entry.ID))

	return entry, nil
}

// ClockOut completes the actor's open entry: clockOut = now, totalHours =
// elapsed wall-clock hours rounded to two decimals, status = completed.
func (c *TimeEntryController) ClockOut(ctx context.Context, actor *entity.Claims, in *entity.ClockOutInput) (*entity.TimeEntry, error) {
	open, err := c.deps.Store.GetOpenTimeEntry(ctx, actor.ID)
	if err != nil {
		c.deps.Logger.Error("Error checking open time entry", slog.String("error", err.Error()))
		return nil, err
	}

	if open == nil {
		return nil, entity.ErrNotClockedIn
	}

	clockOut := time.Now()
	entry, err := c.deps.Store.CloseTimeEntry(ctx, open.ID, entity.TimeEntryClose{
		ClockOut:   clockOut,
		TotalHours: roundHours(clockOut.Sub(open.ClockIn)),
		Notes:      in.Notes,
	})
	if err != nil {
		c.deps.Logger.Error("Error closing time entry", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Clocked out",
		slog.Uint64("user_id", actor.ID),
		slog.Uint64("entry_id", entry.ID),
		slog.Float64("total_hours", *entry.TotalHours),
	)

	return entry, nil
}

// Current returns the actor's open entry, or nil without error when the
// actor is not clocked in.
func (c *TimeEntryController) Current(ctx context.Context, actor *entity.Claims) (*entity.TimeEntry, error) {
	entry, err := c.deps.Store.GetOpenTimeEntry(ctx, actor.ID)
	if err != nil {
		c.deps.Logger.Error("Error getting current time entry", slog.String("error", err.Error()))
		return nil, err
	}

	return entry, nil
}

// List applies the access filter: employees see their own entries,
// managers see entries of assignees on their projects, admins see all.
func (c *TimeEntryController) List(ctx context.Context, actor *entity.Claims) ([]entity.TimeEntry, error) {
	switch actor.Role {
	case entity.RoleEmployee:
		return c.deps.Store.ListTimeEntriesByUser(ctx, actor.ID)
	case entity.RoleManager:
		return c.listForManager(ctx, actor.ID)
	default:
		return c.deps.Store.ListTimeEntries(ctx)
	}
}

func (c *TimeEntryController) listForManager(ctx context.Context, managerID uint64) ([]entity.TimeEntry, error) {
	projects, err := c.deps.Store.ListProjectsByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	assigneeIDs := make(map[uint64]struct{})
	for _, project := range projects {
		tasks, tasksErr := c.deps.Store.ListTasksByProject(ctx, project.ID)
		if tasksErr != nil {
			return nil, tasksErr
		}

		for _, task := range tasks {
			if task.AssigneeID != nil {
				assigneeIDs[*task.AssigneeID] = struct{}{}
			}
		}
	}

	entries := []entity.TimeEntry{}
	for assigneeID := range assigneeIDs {
		userEntries, entriesErr := c.deps.Store.ListTimeEntriesByUser(ctx, assigneeID)
		if entriesErr != nil {
			return nil, entriesErr
		}

		entries = append(entries, userEntries...)
	}

	return entries, nil
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
