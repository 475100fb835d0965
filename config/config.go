// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrymomot/orgwizard/pkg/logger"
	"github.com/dmitrymomot/orgwizard/views"
)

// ErrInvalidConfig wraps every validation failure from Load.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	// Server settings
	Address         string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel          string
	LogFormat         string
	SentryDSN         string
	SentryEnvironment string

	// Page state
	RedisURL string
	PageTTL  time.Duration

	// Organiser name fields, one per locale
	Locales []views.Locale
}

// LoadDotEnv loads the given .env files into the environment. Missing files
// are not an error; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load builds a Config from environment variables with defaults.
func Load() (*Config, error) {
	var errs []error

	shutdown, err := getDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	errs = append(errs, err)
	pageTTL, err := getDuration("PAGE_TTL", 2*time.Hour)
	errs = append(errs, err)
	locales, err := ParseLocales(getEnv("LOCALES", "en:English"))
	errs = append(errs, err)

	format := strings.ToLower(getEnv("LOG_FORMAT", "json"))
	if format != "json" && format != "text" {
		errs = append(errs, fmt.Errorf("%w: LOG_FORMAT %q", ErrInvalidConfig, format))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Config{
		Address:         getEnv("ADDRESS", ":8080"),
		ShutdownTimeout: shutdown,

		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         format,
		SentryDSN:         os.Getenv("SENTRY_DSN"),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "development"),

		RedisURL: os.Getenv("REDIS_URL"),
		PageTTL:  pageTTL,

		Locales: locales,
	}, nil
}

// Logger returns the logger settings.
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:             c.LogLevel,
		Format:            c.LogFormat,
		SentryDSN:         c.SentryDSN,
		SentryEnvironment: c.SentryEnvironment,
	}
}

// ParseLocales parses "en:English,de:Deutsch". A bare code is its own label.
func ParseLocales(s string) ([]views.Locale, error) {
	var locales []views.Locale
	seen := make(map[string]bool)
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		code, label, _ := strings.Cut(part, ":")
		code = strings.TrimSpace(code)
		label = strings.TrimSpace(label)
		if code == "" {
			return nil, fmt.Errorf("%w: LOCALES entry %q has no code", ErrInvalidConfig, part)
		}
		if seen[code] {
			return nil, fmt.Errorf("%w: LOCALES has %q twice", ErrInvalidConfig, code)
		}
		seen[code] = true
		if label == "" {
			label = code
		}
		locales = append(locales, views.Locale{Code: code, Label: label})
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("%w: LOCALES is empty", ErrInvalidConfig)
	}
	return locales, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidConfig, key, v)
	}
	return d, nil
}
