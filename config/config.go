package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret means the process must not serve traffic.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds all environment configuration, loaded once at startup.
type Config struct {
	Port string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string
	PGPoolMax  string

	RedisAddr string

	JWTSecret     string
	TokenLifetime time.Duration
	CookieSecure  bool

	DashboardURL  string
	PublicBaseURL string

	MediaDriver string // "disk" or "s3"
	MediaDir    string
	S3Bucket    string
	S3Prefix    string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present. Absence of JWT_SECRET is a fatal configuration
// error; the caller must refuse to start.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "9090"),
		PGHost:        getenv("PG_HOST", "localhost"),
		PGPort:        getenv("PG_PORT", "5432"),
		PGUser:        os.Getenv("PG_USER"),
		PGPassword:    os.Getenv("PG_PASSWORD"),
		PGDatabase:    getenv("PG_DATABASE", "haven"),
		PGPoolMax:     getenv("PG_POOL_MAX", "10"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenLifetime: time.Hour,
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		DashboardURL:  os.Getenv("DASHBOARD_URL"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:9090"),
		MediaDriver:   getenv("MEDIA_DRIVER", "disk"),
		MediaDir:      getenv("MEDIA_DIR", "uploads"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Prefix:      getenv("S3_PREFIX", "media/"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	if s := os.Getenv("TOKEN_LIFETIME"); s != "" {
		secs, err := strconv.Atoi(s)
		if err != nil || secs <= 0 {
			return nil, errors.New("TOKEN_LIFETIME must be a positive number of seconds")
		}
		cfg.TokenLifetime = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

// PostgresURL builds the pgx pool connection string from the PG fields.
func (c *Config) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?pool_max_conns=%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase, c.PGPoolMax,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
