package controllers

import (
	"context"
	"log/slog"
	"time"

	"github.com/worktrack-io/workforce_service/internal/entity"
)

type LeaveController struct {
	deps *Dependens
}

func NewLeaveController(deps *Dependens) *LeaveController {
	return &LeaveController{
		deps: deps,
	}
}

// Create submits a leave request for the actor. Equal start and end dates
// make a one-day request; an end date before the start date is rejected.
func (c *LeaveController) Create(ctx context.Context, actor *entity.Claims, in *entity.CreateLeaveRequestInput) (*entity.LeaveRequest, error) {
	if in.EndDate.Before(in.StartDate) {
		return nil, entity.ErrInvalidDateRange
	}

	req, err := c.deps.Store.CreateLeaveRequest(ctx, &entity.LeaveRequest{
		UserID:      actor.ID,
		Type:        in.Type,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Reason:      in.Reason,
		Status:      entity.LeavePending,
		RequestedOn: time.Now(),
	})
	if err != nil {
		c.deps.Logger.Error("Error creating leave request", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Leave request created",
		slog.Uint64("user_id", actor.ID),
		slog.Uint64("request_id", req.ID),
		slog.String("type", req.Type),
	)

	return req, nil
}

// Cancel moves the actor's own pending request to cancelled. A request
// that already left pending fails with NotPending no matter who asks;
// ownership is checked after that.
func (c *LeaveController) Cancel(ctx context.Context, actor *entity.Claims, id uint64) (*entity.LeaveRequest, error) {
	req, err := c.deps.Store.GetLeaveRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != entity.LeavePending {
		return nil, entity.ErrNotPending
	}

	if !OwnsLeaveRequest(actor.ID, req) {
		return nil, entity.ErrNotOwner
	}

	cancelled, err := c.deps.Store.CancelLeaveRequest(ctx, id)
	if err != nil {
		c.deps.Logger.Error("Error cancelling leave request", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Leave request cancelled", slog.Uint64("request_id", id), slog.Uint64("user_id", actor.ID))

	return cancelled, nil
}

// Review approves or rejects a pending request. The role gate comes
// first, so an employee reviewer always gets NotAuthorized regardless of
// the request's state or ownership.
func (c *LeaveController) Review(ctx context.Context, actor *entity.Claims, id uint64, decision string, comments *string) (*entity.LeaveRequest, error) {
	if !CanReviewLeave(actor.Role) {
		return nil, entity.ErrNotAuthorized
	}

	if decision != entity.LeaveApproved && decision != entity.LeaveRejected {
		return nil, &entity.DomainError{
			Kind:    entity.KindValidation,
			Code:    "InvalidDecision",
			Message: "status must be 'approved' or 'rejected'",
		}
	}

	if _, err := c.deps.Store.GetLeaveRequest(ctx, id); err != nil {
		return nil, err
	}

	reviewed, err := c.deps.Store.ReviewLeaveRequest(ctx, id, entity.LeaveReview{
		Decision:   decision,
		ReviewerID: actor.ID,
		ReviewedOn: time.Now(),
		Comments:   comments,
	})
	if err != nil {
		c.deps.Logger.Error("Error reviewing leave request", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Leave request reviewed",
		slog.Uint64("request_id", id),
		slog.Uint64("reviewer_id", actor.ID),
		slog.String("decision", decision),
	)

	return reviewed, nil
}

// List applies the access filter: employees see their own requests,
// managers and admins see the pending queue.
func (c *LeaveController) List(ctx context.Context, actor *entity.Claims) ([]entity.LeaveRequest, error) {
	if actor.Role == entity.RoleEmployee {
		return c.deps.Store.ListLeaveRequestsByUser(ctx, actor.ID)
	}

	return c.deps.Store.ListPendingLeaveRequests(ctx)
}

// ListAll returns every leave request; manager/admin only.
func (c *LeaveController) ListAll(ctx context.Context, actor *entity.Claims) ([]entity.LeaveRequest, error) {
	if !CanReviewLeave(actor.Role) {
		return nil, entity.ErrForbidden
	}

	return c.deps.Store.ListLeaveRequests(ctx)
}
