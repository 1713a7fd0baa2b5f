package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

func (p *Postgres) GetLeaveRequest(ctx context.Context, id uint64) (*entity.LeaveRequest, error) {
	req, err := collectOne[entity.LeaveRequest](p.db.Query(ctx,
		"SELECT * FROM leave_requests WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("get leave request: %w", err)
	}

	return req, nil
}

func (p *Postgres) ListLeaveRequests(ctx context.Context) ([]entity.LeaveRequest, error) {
	reqs, err := collectAll[entity.LeaveRequest](p.db.Query(ctx,
		"SELECT * FROM leave_requests ORDER BY requested_on"))
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	return reqs, nil
}

func (p *Postgres) ListLeaveRequestsByUser(ctx context.Context, userID uint64) ([]entity.LeaveRequest, error) {
	reqs, err := collectAll[entity.LeaveRequest](p.db.Query(ctx,
		"SELECT * FROM leave_requests WHERE user_id = $1 ORDER BY requested_on", userID))
	if err != nil {
		return nil, fmt.Errorf("list leave requests by user: %w", err)
	}

	return reqs, nil
}

func (p *Postgres) ListPendingLeaveRequests(ctx context.Context) ([]entity.LeaveRequest, error) {
	reqs, err := collectAll[entity.LeaveRequest](p.db.Query(ctx,
		"SELECT * FROM leave_requests WHERE status = $1 ORDER BY requested_on", entity.LeavePending))
	if err != nil {
		return nil, fmt.Errorf("list pending leave requests: %w", err)
	}

	return reqs, nil
}

func (p *Postgres) CreateLeaveRequest(ctx context.Context, req *entity.LeaveRequest) (*entity.LeaveRequest, error) {
	created, err := collectOne[entity.LeaveRequest](p.db.Query(ctx,
		`INSERT INTO leave_requests (user_id, type, start_date, end_date, reason, status, requested_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING *`,
		req.UserID, req.Type, req.StartDate, req.EndDate, req.Reason, req.Status, req.RequestedOn))
	if err != nil {
		return nil, fmt.Errorf("create leave request: %w", err)
	}

	return created, nil
}

func (p *Postgres) CancelLeaveRequest(ctx context.Context, id uint64) (*entity.LeaveRequest, error) {
	req, err := collectOne[entity.LeaveRequest](p.db.Query(ctx,
		`UPDATE leave_requests
		 SET status = $1
		 WHERE id = $2 AND status = $3
		 RETURNING *`,
		entity.LeaveCancelled, id, entity.LeavePending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotPending
		}
		return nil, fmt.Errorf("cancel leave request: %w", err)
	}

	return req, nil
}

func (p *Postgres) ReviewLeaveRequest(ctx context.Context, id uint64, review entity.LeaveReview) (*entity.LeaveRequest, error) {
	req, err := collectOne[entity.LeaveRequest](p.db.Query(ctx,
		`UPDATE leave_requests
		 SET status = $1, reviewer_id = $2, reviewed_on = $3, comments = $4
		 WHERE id = $5 AND status = $6
		 RETURNING *`,
		review.Decision, review.ReviewerID, review.ReviewedOn, review.Comments,
		id, entity.LeavePending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotPending
		}
		return nil, fmt.Errorf("review leave request: %w", err)
	}

	return req, nil
}
