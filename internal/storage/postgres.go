package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/worktrack-io/workforce_service/internal/entity"
)

// DB is the subset of pgx operations the store needs. Both *pgxpool.Pool
// and *pgx.Conn satisfy it.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Postgres struct {
	db DB
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func collectOne[T any](rows pgx.Rows, queryErr error) (*T, error) {
	if queryErr != nil {
		return nil, queryErr
	}
	defer rows.Close()

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func collectAll[T any](rows pgx.Rows, queryErr error) ([]T, error) {
	if queryErr != nil {
		return nil, queryErr
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

func (p *Postgres) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := collectOne[entity.User](p.db.Query(ctx, "SELECT * FROM users WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := collectOne[entity.User](p.db.Query(ctx, "SELECT * FROM users WHERE username = $1", username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (p *Postgres) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := collectAll[entity.User](p.db.Query(ctx, "SELECT * FROM users ORDER BY id"))
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (p *Postgres) ListUsersByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	users, err := collectAll[entity.User](p.db.Query(ctx, "SELECT * FROM users WHERE role = $1 ORDER BY id", role))
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	return users, nil
}

func (p *Postgres) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	created, err := collectOne[entity.User](p.db.Query(ctx,
		`INSERT INTO users (username, password, name, email, role, department)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING *`,
		user.Username, user.PasswordHash, user.Name, user.Email, user.Role, user.Department))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entity.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}
