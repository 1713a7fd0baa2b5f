package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/worktrack-io/workforce_service/internal/config"
)

// NewConnect opens a connection pool; the clock-in/clock-out path is hit
// by concurrent requests, so a single pgx.Conn will not do.
func NewConnect(cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s/%s",
		cfg.Database.User, cfg.Database.Password, cfg.Database.Host, cfg.Database.Database)

	pool, err := pgxpool.New(context.Background(), url)
	if err != nil {
		logger.Error("Error connecting to DB", slog.String("error", err.Error()))
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		logger.Error("Error pinging DB", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Connected to DB successfully")
	return pool, nil
}
