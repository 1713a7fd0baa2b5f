package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server struct {
		Host              string
		JWTSecret         string `toml:"jwt_secret"`
		ReadTimeout       time.Duration
		WriteTimeout      time.Duration
		ReadHeaderTimeout time.Duration
		StrReadTimeout    string `toml:"read_timeout"`
		StrWriteTimeout   string `toml:"write_timeout"`
		StrHeaderTimeout  string `toml:"read_header_timeout"`
	}
	Database struct {
		// Driver selects the store: "postgres" or "memory".
		Driver   string
		Host     string
		User     string
		Password string
		Database string
	}
	Redis struct {
		RedisAddr          string `toml:"redis_addr"`
		RedisPassword      string `toml:"redis_password"`
		RedisDB            int    `toml:"redis_db"`
		AccessTokenTTL     time.Duration
		RefreshTokenTTL    time.Duration
		StrAccessTokenTTL  string `toml:"access_token_ttl"`
		StrRefreshTokenTTL string `toml:"refresh_token_ttl"`
	}
}

func GetConfig(logger *slog.Logger) (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "configs/config.toml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Error read config file", slog.String("error", err.Error()))
		return nil, err
	}

	var cfg *Config

	if _, tomlErr := toml.Decode(string(data), &cfg); tomlErr != nil {
		logger.Error("Error decode config file", slog.String("error", tomlErr.Error()))
		return nil, tomlErr
	}

	// Secrets may come from the environment (.env overlay) instead of the
	// config file.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Server.JWTSecret = secret
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if cfg.Server.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}

	for _, d := range []struct {
		raw  string
		dst  *time.Duration
		name string
	}{
		{cfg.Server.StrReadTimeout, &cfg.Server.ReadTimeout, "read_timeout"},
		{cfg.Server.StrWriteTimeout, &cfg.Server.WriteTimeout, "write_timeout"},
		{cfg.Server.StrHeaderTimeout, &cfg.Server.ReadHeaderTimeout, "read_header_timeout"},
		{cfg.Redis.StrAccessTokenTTL, &cfg.Redis.AccessTokenTTL, "access_token_ttl"},
		{cfg.Redis.StrRefreshTokenTTL, &cfg.Redis.RefreshTokenTTL, "refresh_token_ttl"},
	} {
		if d.raw == "" {
			continue
		}
		*d.dst, err = time.ParseDuration(d.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.name, err)
		}
	}

	logger.Info("Config is loaded")
	return cfg, nil
}
