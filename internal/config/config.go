package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings.
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"jobportal"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	JWTAccessSecret  string `envconfig:"JWT_ACCESS_TOKEN_SECRET" required:"true"`
	JWTAccessExpire  Expire `envconfig:"JWT_ACCESS_EXPIRE" default:"15m"`
	JWTRefreshSecret string `envconfig:"JWT_REFRESH_TOKEN_SECRET" required:"true"`
	JWTRefreshExpire Expire `envconfig:"JWT_REFRESH_EXPIRE" default:"7d"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`

	ResendAPIKey string `envconfig:"RESEND_API_KEY"`
	DigestFrom   string `envconfig:"DIGEST_FROM" default:"Job Portal <no-reply@jobportal.local>"`
	DigestCron   string `envconfig:"DIGEST_CRON" default:"0 0 * * 0"`
}

// DSN assembles the postgres connection string.
func (c Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// Load reads configs/.env (if present) and parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Expire is a duration that also accepts a day suffix, e.g. "7d" or "1d12h".
type Expire time.Duration

// Decode implements envconfig.Decoder.
func (e *Expire) Decode(value string) error {
	d, err := ParseExpire(value)
	if err != nil {
		return err
	}
	*e = Expire(d)
	return nil
}

// Duration returns the underlying time.Duration.
func (e Expire) Duration() time.Duration { return time.Duration(e) }

// ParseExpire parses a Go duration string, additionally allowing a leading
// "<n>d" day component since time.ParseDuration stops at hours.
func ParseExpire(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}

	var days time.Duration
	if i := strings.IndexByte(value, 'd'); i > 0 && allDigits(value[:i]) {
		n, err := strconv.Atoi(value[:i])
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q: %w", value[:i], err)
		}
		days = time.Duration(n) * 24 * time.Hour
		value = value[i+1:]
		if value == "" {
			return days, nil
		}
	}

	rest, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}
	return days + rest, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
