// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	envAPIURL         = "QUICKSHOW_API_URL"
	envTimezone       = "QUICKSHOW_TIMEZONE"
	envToastMS        = "QUICKSHOW_TOAST_MS"
	envCacheTTL       = "QUICKSHOW_CACHE_TTL"
	envRequestTimeout = "QUICKSHOW_REQUEST_TIMEOUT"
	envDebug          = "QUICKSHOW_DEBUG"

	defaultToastDuration  = 2 * time.Second
	defaultCacheTTL       = 10 * time.Minute
	defaultRequestTimeout = 12 * time.Second
)

type Config struct {
	APIURL         string `validate:"omitempty,url"`
	Timezone       string
	ToastDuration  time.Duration `validate:"gt=0"`
	CacheTTL       time.Duration `validate:"gte=0"`
	RequestTimeout time.Duration `validate:"gt=0"`
	Debug          bool

	Location *time.Location `validate:"-"`
}

// UseFixtures reports whether shows come from the embedded fixtures instead
// of a remote API.
func (c Config) UseFixtures() bool {
	return strings.TrimSpace(c.APIURL) == ""
}

// Load reads .env (if present) and the QUICKSHOW_* variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		APIURL:         strings.TrimRight(strings.TrimSpace(os.Getenv(envAPIURL)), "/"),
		Timezone:       strings.TrimSpace(os.Getenv(envTimezone)),
		ToastDuration:  defaultToastDuration,
		CacheTTL:       defaultCacheTTL,
		RequestTimeout: defaultRequestTimeout,
		Debug:          envBool(envDebug),
	}

	if raw := strings.TrimSpace(os.Getenv(envToastMS)); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid int for %s: %q", envToastMS, raw)
		}
		cfg.ToastDuration = time.Duration(ms) * time.Millisecond
	}
	var err error
	if cfg.CacheTTL, err = envDuration(envCacheTTL, cfg.CacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = envDuration(envRequestTimeout, cfg.RequestTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.Finalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Finalize validates the settings and resolves the display location. Call it
// again after overriding fields.
func (c *Config) Finalize() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.Location = time.Local
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envTimezone, c.Timezone, err)
		}
		c.Location = loc
	}
	return nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	return d, nil
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
