// Package config resolves host settings from defaults, an optional .env
// file, ABSORB_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "ABSORB_"

// Config holds everything a host needs to build and drive a game.
type Config struct {
	WorldWidth      float64
	WorldHeight     float64
	ViewWidth       int
	ViewHeight      int
	Seed            int64
	TPS             int
	LeaderboardSize int
	FeedSize        int // recent events kept for the on-screen feed
	Autopilot       bool
	Verbose         bool
}

// Default returns the standard 2048x2048 arena with an 800x600 view.
func Default() Config {
	return Config{
		WorldWidth:      2048,
		WorldHeight:     2048,
		ViewWidth:       800,
		ViewHeight:      600,
		Seed:            time.Now().UnixNano(),
		TPS:             60,
		LeaderboardSize: 10,
		FeedSize:        8,
	}
}

// LoadDotEnv loads path into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides c with any ABSORB_* variables present in the environment.
func (c *Config) ApplyEnv() error {
	floats := map[string]*float64{
		"WORLD_WIDTH":  &c.WorldWidth,
		"WORLD_HEIGHT": &c.WorldHeight,
	}
	for key, dst := range floats {
		if v, ok := lookup(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = f
		}
	}

	ints := map[string]*int{
		"VIEW_WIDTH":  &c.ViewWidth,
		"VIEW_HEIGHT": &c.ViewHeight,
		"TPS":         &c.TPS,
		"LEADERBOARD": &c.LeaderboardSize,
		"FEED_SIZE":   &c.FeedSize,
	}
	for key, dst := range ints {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = n
		}
	}

	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = n
	}

	bools := map[string]*bool{
		"AUTOPILOT": &c.Autopilot,
		"VERBOSE":   &c.Verbose,
	}
	for key, dst := range bools {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
			}
			*dst = b
		}
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// RegisterFlags binds c's fields to fs, using c's current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.WorldWidth, "world-width", c.WorldWidth, "world width in units (food target is half of it)")
	fs.Float64Var(&c.WorldHeight, "world-height", c.WorldHeight, "world height in units")
	fs.IntVar(&c.ViewWidth, "view-width", c.ViewWidth, "viewport width in pixels")
	fs.IntVar(&c.ViewHeight, "view-height", c.ViewHeight, "viewport height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed for spawning")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.LeaderboardSize, "leaderboard", c.LeaderboardSize, "leaderboard rows to show")
	fs.IntVar(&c.FeedSize, "feed", c.FeedSize, "recent events kept in the on-screen feed")
	fs.BoolVar(&c.Autopilot, "autopilot", c.Autopilot, "start with the player on autopilot")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "record per-tick events in the log")
}

// Validate rejects settings no host can run with.
func (c Config) Validate() error {
	switch {
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("world size must be positive, got %.0fx%.0f", c.WorldWidth, c.WorldHeight)
	case c.ViewWidth <= 0 || c.ViewHeight <= 0:
		return fmt.Errorf("view size must be positive, got %dx%d", c.ViewWidth, c.ViewHeight)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be > 0, got %d", c.TPS)
	case c.LeaderboardSize < 0:
		return fmt.Errorf("leaderboard must be >= 0, got %d", c.LeaderboardSize)
	case c.FeedSize <= 0:
		return fmt.Errorf("feed must be > 0, got %d", c.FeedSize)
	}
	return nil
}

// Load resolves a Config for a host: defaults, then dotenv, then environment,
// then args parsed with a FlagSet named name.
func Load(name, dotenv string, args []string) (Config, error) {
	c := Default()
	if err := LoadDotEnv(dotenv); err != nil {
		return Config{}, err
	}
	if err := c.ApplyEnv(); err != nil {
		return Config{}, err
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
