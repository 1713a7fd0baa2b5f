package controllers

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-io/workforce_service/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthController_Register(t *testing.T) {
	tests := []struct {
		name      string
		input     entity.RegisterInput
		wantRole  entity.Role
		wantError bool
	}{
		{
			name: "defaults to employee role",
			input: entity.RegisterInput{
				Username: "jdoe",
				Password: "secret123",
				Name:     "John Doe",
				Email:    "jdoe@example.com",
			},
			wantRole: entity.RoleEmployee,
		},
		{
			name: "explicit manager role",
			input: entity.RegisterInput{
				Username: "msmith",
				Password: "secret123",
				Name:     "Mary Smith",
				Email:    "msmith@example.com",
				Role:     "manager",
			},
			wantRole: entity.RoleManager,
		},
		{
			name: "unknown role rejected",
			input: entity.RegisterInput{
				Username: "ghost",
				Password: "secret123",
				Name:     "Ghost",
				Email:    "ghost@example.com",
				Role:     "superuser",
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _ := newTestDeps(&stubRedis{})
			ctrl := NewAuthController(deps)

			user, err := ctrl.Register(context.Background(), &tt.input)
			if tt.wantError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
		})
	}
}

func TestAuthController_Register_DuplicateUsername(t *testing.T) {
	deps, _ := newTestDeps(&stubRedis{})
	ctrl := NewAuthController(deps)

	in := entity.RegisterInput{Username: "jdoe", Password: "secret123", Name: "John", Email: "j@example.com"}
	_, err := ctrl.Register(context.Background(), &in)
	require.NoError(t, err)

	in.Email = "other@example.com"
	_, err = ctrl.Register(context.Background(), &in)
	assert.ErrorIs(t, err, entity.ErrUsernameTaken)
}

func TestAuthController_Login(t *testing.T) {
	deps, _ := newTestDeps(&stubRedis{})
	ctrl := NewAuthController(deps)

	_, err := ctrl.Register(context.Background(), &entity.RegisterInput{
		Username: "jdoe", Password: "secret123", Name: "John", Email: "j@example.com",
	})
	require.NoError(t, err)

	access, refresh, err := ctrl.Login(context.Background(), &entity.LoginRequest{Username: "jdoe", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := ctrl.CheckUserToken(context.Background(), "Bearer "+access)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, entity.RoleEmployee, claims.Role)
}

func TestAuthController_Login_BadCredentials(t *testing.T) {
	deps, _ := newTestDeps(&stubRedis{})
	ctrl := NewAuthController(deps)

	_, err := ctrl.Register(context.Background(), &entity.RegisterInput{
		Username: "jdoe", Password: "secret123", Name: "John", Email: "j@example.com",
	})
	require.NoError(t, err)

	_, _, err = ctrl.Login(context.Background(), &entity.LoginRequest{Username: "jdoe", Password: "wrong"})
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, _, err = ctrl.Login(context.Background(), &entity.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestAuthController_CheckUserToken_Revoked(t *testing.T) {
	rdb := &stubRedis{}
	deps, _ := newTestDeps(rdb)
	ctrl := NewAuthController(deps)

	_, err := ctrl.Register(context.Background(), &entity.RegisterInput{
		Username: "jdoe", Password: "secret123", Name: "John", Email: "j@example.com",
	})
	require.NoError(t, err)

	access, _, err := ctrl.Login(context.Background(), &entity.LoginRequest{Username: "jdoe", Password: "secret123"})
	require.NoError(t, err)

	rdb.getErr = redis.Nil
	_, err = ctrl.CheckUserToken(context.Background(), "Bearer "+access)
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestAuthController_CheckUserToken_Malformed(t *testing.T) {
	deps, _ := newTestDeps(&stubRedis{})
	ctrl := NewAuthController(deps)

	for _, header := range []string{"", "Bearer ", "no-bearer-prefix", "Bearer not.a.token"} {
		_, err := ctrl.CheckUserToken(context.Background(), header)
		assert.ErrorIs(t, err, entity.ErrUnauthenticated, "header %q", header)
	}
}
