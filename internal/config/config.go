// Package config loads the environment-variable knobs named in the
// generator's external interface: output location, seed, and per-snapshot
// ride counts. Everything else about a run is derived in code.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the generator.
type Config struct {
	OutputDir string
	Seed      int64
	T1Rides   int
	T2Rides   int
}

const (
	defaultOutputDir = "output"
	defaultSeed      = 42
	defaultT1Rides   = 100_000
	defaultT2Rides   = 100_000
)

// Load reads configuration from environment variables with sensible
// defaults. A .env file in the working directory is loaded first, if
// present; its absence is not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	return &Config{
		OutputDir: getEnv("RAILGEN_OUTPUT_DIR", defaultOutputDir),
		Seed:      int64(getEnvInt("RAILGEN_SEED", defaultSeed)),
		T1Rides:   getEnvPositiveInt("RAILGEN_T1_RIDES", defaultT1Rides),
		T2Rides:   getEnvPositiveInt("RAILGEN_T2_RIDES", defaultT2Rides),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvPositiveInt parses an override that is only honored when positive;
// non-integer or non-positive values silently fall back to the default
// (spec §7: invalid env var -> silent fallback, not an error).
func getEnvPositiveInt(key string, defaultValue int) int {
	value := getEnvInt(key, defaultValue)
	if value <= 0 {
		return defaultValue
	}
	return value
}
