package controllers

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-io/workforce_service/internal/config"
	"github.com/worktrack-io/workforce_service/internal/entity"
	"github.com/worktrack-io/workforce_service/internal/storage"
)

// stubRedis satisfies the Dependens redis interface with canned
// responses. Setting getErr to redis.Nil simulates a revoked token.
type stubRedis struct {
	getErr error
}

func (s *stubRedis) Set(ctx context.Context, _ string, _ interface{}, _ time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (s *stubRedis) Get(ctx context.Context, _ string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	if s.getErr != nil {
		cmd.SetErr(s.getErr)
	} else {
		cmd.SetVal("valid")
	}
	return cmd
}

func (s *stubRedis) Del(ctx context.Context, _ ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(1)
	return cmd
}

func newTestDeps(rdb *stubRedis) (*Dependens, *storage.Memory) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := &config.Config{}
	cfg.Server.JWTSecret = "test-secret-key"
	cfg.Redis.AccessTokenTTL = time.Hour
	cfg.Redis.RefreshTokenTTL = time.Hour * 24

	store := storage.NewMemory()

	return &Dependens{
		Store:  store,
		Redis:  rdb,
		Logger: logger,
		Config: cfg,
	}, store
}

func seedUser(t *testing.T, store *storage.Memory, username string, role entity.Role) *entity.User {
	t.Helper()

	user, err := store.CreateUser(context.Background(), &entity.User{
		Username:     username,
		PasswordHash: "x",
		Name:         username,
		Email:        username + "@example.com",
		Role:         role,
	})
	require.NoError(t, err)

	return user
}

func claimsFor(user *entity.User) *entity.Claims {
	return &entity.Claims{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

func strPtr(s string) *string {
	return &s
}

func uint64Ptr(u uint64) *uint64 {
	return &u
}
