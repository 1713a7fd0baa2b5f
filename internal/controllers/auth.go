package controllers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/worktrack-io/workforce_service/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	deps *Dependens
}

func NewAuthController(deps *Dependens) *AuthController {
	return &AuthController{
		deps: deps,
	}
}

// Register creates a user with a bcrypt-hashed password. Role defaults to
// employee when the payload leaves it empty.
func (c *AuthController) Register(ctx context.Context, in *entity.RegisterInput) (*entity.User, error) {
	role := entity.RoleEmployee
	if in.Role != "" {
		parsed, err := entity.ParseRole(in.Role)
		if err != nil {
			c.deps.Logger.Warn("Invalid role in registration", slog.String("role", in.Role))
			return nil, &entity.DomainError{Kind: entity.KindValidation, Code: "InvalidRole", Message: err.Error()}
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
		return nil, err
	}

	user, err := c.deps.Store.CreateUser(ctx, &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		Department:   in.Department,
	})
	if err != nil {
		c.deps.Logger.Error("Error creating user", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("User registered", slog.String("username", user.Username), slog.String("role", string(user.Role)))

	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair. Both
// tokens are recorded in redis so logout can revoke them before expiry.
func (c *AuthController) Login(ctx context.Context, req *entity.LoginRequest) (string, string, error) {
	user, err := c.deps.Store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.deps.Logger.Warn("user not found", slog.String("username", req.Username))
			return "", "", entity.ErrInvalidCredentials
		}

		c.deps.Logger.Error("Error querying user", slog.String("error", err.Error()))
		return "", "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.deps.Logger.Warn("Invalid password", slog.String("username", req.Username))
		return "", "", entity.ErrInvalidCredentials
	}

	accessToken, err := c.createToken(user, "access")
	if err != nil {
		return "", "", err
	}

	refreshToken, err := c.createToken(user, "refresh")
	if err != nil {
		return "", "", err
	}

	if err = c.deps.Redis.Set(ctx, "access_token:"+accessToken, "valid", c.deps.Config.Redis.AccessTokenTTL).Err(); err != nil {
		c.deps.Logger.Error("Error setting access token", slog.String("error", err.Error()))
		return "", "", err
	}

	if err = c.deps.Redis.Set(ctx, "refresh_token:"+refreshToken, "valid", c.deps.Config.Redis.RefreshTokenTTL).Err(); err != nil {
		c.deps.Logger.Error("Error setting refresh token", slog.String("error", err.Error()))
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Logout revokes the presented access token.
func (c *AuthController) Logout(ctx context.Context, tokenStr string) error {
	if err := c.deps.Redis.Del(ctx, "access_token:"+tokenStr).Err(); err != nil {
		c.deps.Logger.Error("Error deleting access token from Redis", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func (c *AuthController) createToken(user *entity.User, tokenType string) (string, error) {
	expiresAt := c.deps.Config.Redis.AccessTokenTTL
	if tokenType == "refresh" {
		expiresAt = c.deps.Config.Redis.RefreshTokenTTL
	}

	claims := entity.Claims{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		TokenID:  uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresAt)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(c.deps.Config.Server.JWTSecret))
	if err != nil {
		c.deps.Logger.Error("Error signing token", slog.String("error", err.Error()))
		return "", err
	}

	return tokenStr, nil
}

// CheckUserToken validates a bearer token: present in redis (not revoked),
// signed with the configured secret, and unexpired.
func (c *AuthController) CheckUserToken(ctx context.Context, authHeader string) (*entity.Claims, error) {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == authHeader || tokenStr == "" {
		return nil, entity.ErrUnauthenticated
	}

	if err := c.deps.Redis.Get(ctx, "access_token:"+tokenStr).Err(); errors.Is(err, redis.Nil) {
		c.deps.Logger.Warn("Token revoked")
		return nil, entity.ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.deps.Config.Server.JWTSecret), nil
	})
	if err != nil {
		c.deps.Logger.Warn("Error parsing token", slog.String("error", err.Error()))
		return nil, entity.ErrUnauthenticated
	}

	if claims, ok := token.Claims.(*entity.Claims); ok && token.Valid && claims.Role.Valid() {
		return claims, nil
	}

	return nil, entity.ErrUnauthenticated
}

// CurrentUser resolves the authenticated user's full record.
func (c *AuthController) CurrentUser(ctx context.Context, claims *entity.Claims) (*entity.User, error) {
	user, err := c.deps.Store.GetUser(ctx, claims.ID)
	if err != nil {
		c.deps.Logger.Error("Error getting current user", slog.String("error", err.Error()))
		return nil, err
	}

	return user, nil
}
