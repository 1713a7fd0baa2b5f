package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

func (p *Postgres) ListTimeEntries(ctx context.Context) ([]entity.TimeEntry, error) {
	entries, err := collectAll[entity.TimeEntry](p.db.Query(ctx,
		"SELECT * FROM time_entries ORDER BY clock_in DESC"))
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}

	return entries, nil
}

func (p *Postgres) ListTimeEntriesByUser(ctx context.Context, userID uint64) ([]entity.TimeEntry, error) {
	entries, err := collectAll[entity.TimeEntry](p.db.Query(ctx,
		"SELECT * FROM time_entries WHERE user_id = $1 ORDER BY clock_in DESC", userID))
	if err != nil {
		return nil, fmt.Errorf("list time entries by user: %w", err)
	}

	return entries, nil
}

func (p *Postgres) GetOpenTimeEntry(ctx context.Context, userID uint64) (*entity.TimeEntry, error) {
	entry, err := collectOne[entity.TimeEntry](p.db.Query(ctx,
		"SELECT * FROM time_entries WHERE user_id = $1 AND status = $2",
		userID, entity.TimeEntryInProgress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open time entry: %w", err)
	}

	return entry, nil
}

// CreateTimeEntry relies on the partial unique index over
// (user_id) WHERE status = 'in_progress': two concurrent clock-ins for
// the same user cannot both insert, so the invariant holds without an
// explicit transaction.
func (p *Postgres) CreateTimeEntry(ctx context.Context, entry *entity.TimeEntry) (*entity.TimeEntry, error) {
	created, err := collectOne[entity.TimeEntry](p.db.Query(ctx,
		`INSERT INTO time_entries (user_id, clock_in, break_minutes, notes, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING *`,
		entry.UserID, entry.ClockIn, entry.BreakMinutes, entry.Notes, entry.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrAlreadyClockedIn
		}
		return nil, fmt.Errorf("create time entry: %w", err)
	}

	return created, nil
}

func (p *Postgres) CloseTimeEntry(ctx context.Context, id uint64, close entity.TimeEntryClose) (*entity.TimeEntry, error) {
	entry, err := collectOne[entity.TimeEntry](p.db.Query(ctx,
		`UPDATE time_entries
		 SET clock_out = $1, total_hours = $2, notes = NULLIF($3, ''), status = $4
		 WHERE id = $5 AND status = $6
		 RETURNING *`,
		close.ClockOut, close.TotalHours, close.Notes, entity.TimeEntryCompleted,
		id, entity.TimeEntryInProgress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("close time entry: %w", err)
	}

	return entry, nil
}
