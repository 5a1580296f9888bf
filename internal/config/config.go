package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"
)

var ErrSeedInProduction = errors.New("GENERATOR_SEED must not be set in production")

type Config struct {
	Port           string
	Env            string
	RateLimitRPS   float64
	RateLimitBurst int
	SessionTTL     time.Duration
	// GeneratorSeed switches the server to a deterministic source. Nil means crypto/rand.
	GeneratorSeed *uint64
}

// Load reads configuration from the environment. It exits when the
// configuration is unsafe for production, like the rest of startup.
func Load() Config {
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:           getEnv(getenv, "PORT", "8080"),
		Env:            getEnv(getenv, "ENV", "development"),
		RateLimitRPS:   getFloat(getenv, "RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt(getenv, "RATE_LIMIT_BURST", 10),
		SessionTTL:     getDuration(getenv, "SESSION_TTL", 30*time.Minute),
	}

	if raw := getenv("GENERATOR_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, errors.New("GENERATOR_SEED must be an unsigned integer")
		}
		cfg.GeneratorSeed = &seed
	}

	if cfg.Env == "production" && cfg.GeneratorSeed != nil {
		return Config{}, ErrSeedInProduction
	}

	return cfg, nil
}

func getEnv(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(getenv func(string) string, key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getenv(key), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getInt(getenv func(string) string, key string, fallback int) int {
	v, err := strconv.Atoi(getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(getenv func(string) string, key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
