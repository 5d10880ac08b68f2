package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Log         LogConfig
	StoreDriver string
	JWT         JWTConfig
	Redis       RedisConfig
	CORSOrigins []string
	SuperAdmin  SuperAdminConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// RedisConfig is optional; an empty Addr disables token revocation.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SuperAdminConfig struct {
	Email    string
	Password string
}

const (
	StoreMySQL  = "mysql"
	StoreMemory = "memory"
)

// Load reads the environment, after loading .env when one exists.
func Load() (*Config, bool, error) {
	dotenv := godotenv.Load() == nil

	cfg := &Config{
		Port: envOrDefault("PORT", "8080"),
		Log: LogConfig{
			Level:  envOrDefault("LOG_LEVEL", "info"),
			Format: envOrDefault("LOG_FORMAT", "json"),
		},
		StoreDriver: strings.ToLower(envOrDefault("STORE_DRIVER", StoreMySQL)),
		JWT: JWTConfig{
			Secret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
			TTL:    envDuration("JWT_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		CORSOrigins: parseList(os.Getenv("CORS_ORIGINS"), []string{"*"}),
		SuperAdmin: SuperAdminConfig{
			Email:    strings.TrimSpace(os.Getenv("SUPERADMIN_EMAIL")),
			Password: os.Getenv("SUPERADMIN_PASSWORD"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, dotenv, errors.New("JWT_SECRET is not set")
	}
	if cfg.StoreDriver != StoreMySQL && cfg.StoreDriver != StoreMemory {
		return nil, dotenv, errors.New("STORE_DRIVER must be mysql or memory")
	}
	return cfg, dotenv, nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseList(raw string, def []string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
