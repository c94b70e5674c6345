package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed         = "ARCANE_SEED"
	EnvFreshEnemies = "ARCANE_FRESH_ENEMIES"
	EnvPlain        = "ARCANE_PLAIN"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible sessions.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// FreshEnemies gives every encounter a brand new enemy. When false the
	// catalog enemies are shared, so wounds and stuns carry over between fights.
	FreshEnemies bool

	// Plain selects the line console instead of the full screen terminal UI.
	Plain bool
}

// LoadConfig reads the configuration from the environment.
// Unset variables keep their zero values.
func LoadConfig() (Config, error) {
	var cfg Config

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	var err error
	if cfg.FreshEnemies, err = envBool(EnvFreshEnemies); err != nil {
		return cfg, err
	}
	if cfg.Plain, err = envBool(EnvPlain); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envBool(name string) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// NewRand returns the session random source.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
