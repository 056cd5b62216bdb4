// Package config loads runtime defaults from the environment, optionally
// seeded from a .env file. Every value has a built-in default, so an empty
// environment is fully usable.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunable defaults the CLI starts from. Command-line flags
// override these per invocation.
type Config struct {
	Discount   float64 // MDP discount factor γ
	Theta      float64 // convergence threshold for value sweeps
	SlipProb   float64 // probability of lateral slip per move
	StepReward float64 // reward per non-terminal move
	GoalReward float64 // reward for reaching the goal
	WallReward float64 // reward for bumping a wall

	ResultsCSV string // CSV log path
	DBPath     string // SQLite path; empty disables the store
	ImagesDir  string // directory for rendered SVGs
	CellPx     int    // SVG cell size in pixels
}

// Load reads the environment, after merging a .env file if one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[lvlmaze] .env not loaded: %v", err)
	}

	return Config{
		Discount:   getEnvFloat("LVLMAZE_GAMMA", 0.99),
		Theta:      getEnvFloat("LVLMAZE_THETA", 1e-6),
		SlipProb:   getEnvFloat("LVLMAZE_SLIP", 0),
		StepReward: getEnvFloat("LVLMAZE_STEP_REWARD", -0.01),
		GoalReward: getEnvFloat("LVLMAZE_GOAL_REWARD", 1.0),
		WallReward: getEnvFloat("LVLMAZE_WALL_REWARD", -0.05),
		ResultsCSV: getEnvDefault("LVLMAZE_RESULTS_CSV", "outputs/results/results.csv"),
		DBPath:     getEnvDefault("LVLMAZE_DB", ""),
		ImagesDir:  getEnvDefault("LVLMAZE_IMAGES_DIR", "outputs/images"),
		CellPx:     getEnvInt("LVLMAZE_CELL_PX", 24),
	}
}

// getEnvDefault retrieves an environment variable or the default if unset.
func getEnvDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return def
}

// getEnvFloat retrieves an environment variable as a float, falling back to
// the default when unset or unparsable.
func getEnvFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[lvlmaze] %s=%q is not a number, using %v", key, v, def)

		return def
	}

	return f
}

// getEnvInt retrieves an environment variable as an int, falling back to
// the default when unset or unparsable.
func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[lvlmaze] %s=%q is not an integer, using %v", key, v, def)

		return def
	}

	return n
}
