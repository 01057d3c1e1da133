// Package config loads runtime settings from the environment.
//
// A .env file in the working directory is loaded first (if present); real
// environment variables take precedence over it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/robalobadob/numguess/internal/game"
)

// Config holds everything main needs to wire the game.
type Config struct {
	Port         string
	LogLevel     string
	LogFile      string // empty: TUI discards logs, server logs to stderr
	ClientOrigin string
	Rules        game.Rules
	Seed         uint64 // 0 means crypto randomness
	RemarksFile  string // empty means embedded remarks
	DailySalt    string
}

// Load reads .env (best effort) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "5175"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RemarksFile:  os.Getenv("REMARKS_FILE"),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		Rules:        game.DefaultRules(),
	}

	var err error
	if cfg.Rules.Min, err = intEnv("GUESS_MIN", cfg.Rules.Min); err != nil {
		return Config{}, err
	}
	if cfg.Rules.Max, err = intEnv("GUESS_MAX", cfg.Rules.Max); err != nil {
		return Config{}, err
	}
	if cfg.Rules.Attempts, err = intEnv("GUESS_ATTEMPTS", cfg.Rules.Attempts); err != nil {
		return Config{}, err
	}
	if err := cfg.Rules.Validate(); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("GUESS_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("GUESS_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
