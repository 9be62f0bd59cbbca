package game

import (
	"os"
	"strconv"
	"time"
)

// defaultTickInterval drives NPC updates when WANDER_TICK_MS is unset.
const defaultTickInterval = 100 * time.Millisecond

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible world
	// generation. A seed of 0 means a random seed will be generated.
	Seed int64

	// TickInterval is the fixed delta between NPC update ticks.
	TickInterval time.Duration

	// FarmMapFile optionally replaces the generated farm grid with a map
	// loaded from a CSV file of tile ids.
	FarmMapFile string
}

// ConfigFromEnv reads configuration from the environment:
// WANDER_SEED, WANDER_TICK_MS, WANDER_FARM_MAP.
func ConfigFromEnv() Config {
	cfg := Config{TickInterval: defaultTickInterval}

	if v := os.Getenv("WANDER_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("WANDER_TICK_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TickInterval = time.Duration(ms) * time.Millisecond
		}
	}
	cfg.FarmMapFile = os.Getenv("WANDER_FARM_MAP")

	return cfg
}
