package game

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/tuskwalk/internal/gamedata"
	"github.com/samdwyer/tuskwalk/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed      = "TUSKWALK_SEED"
	EnvWidth     = "TUSKWALK_WIDTH"
	EnvHeight    = "TUSKWALK_HEIGHT"
	EnvWorldFile = "TUSKWALK_WORLD_FILE"
	EnvLogLevel  = "TUSKWALK_LOG_LEVEL"
	EnvLogFile   = "TUSKWALK_LOG_FILE"

	EnvTraceSample = "TUSKWALK_TRACE_SAMPLE"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible island generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Width and Height override the grid size from the world file when positive.
	Width  int
	Height int

	// WorldFile is a YAML or JSON world definition on disk.
	// Empty uses the embedded world.yaml.
	WorldFile string

	LogLevel string
	LogFile  string // Empty disables logging

	// TraceSample is the fraction of traces exported, in [0, 1]. Zero exports all.
	TraceSample float64
}

// ConfigFromEnv reads the TUSKWALK_* environment variables.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		WorldFile: os.Getenv(EnvWorldFile),
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFile:   os.Getenv(EnvLogFile),
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	var err error
	if cfg.Width, err = envInt(EnvWidth); err != nil {
		return cfg, err
	}
	if cfg.Height, err = envInt(EnvHeight); err != nil {
		return cfg, err
	}

	if v := os.Getenv(EnvTraceSample); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTraceSample, err)
		}
		if ratio < 0 || ratio > 1 {
			return cfg, fmt.Errorf("%s: %v is outside [0, 1]", EnvTraceSample, ratio)
		}
		cfg.TraceSample = ratio
	}
	return cfg, nil
}

func envInt(name string) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative", name)
	}
	return n, nil
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewRand returns a random source seeded from the config, and the seed used.
func (c Config) NewRand() (*rand.Rand, int64) {
	seed := c.ResolveSeed()
	return rand.New(rand.NewSource(seed)), seed
}

// LoadWorld loads the world definition and applies size overrides.
// It returns the world config and the prefab registry used to render it.
func (c Config) LoadWorld() (world.Config, *gamedata.PrefabRegistry, error) {
	var (
		def gamedata.WorldDef
		err error
	)
	if c.WorldFile != "" {
		def, err = gamedata.LoadWorldDefFile(c.WorldFile)
	} else {
		def, err = gamedata.LoadWorldDef()
	}
	if err != nil {
		return world.Config{}, nil, err
	}

	if c.Width > 0 {
		def.Grid.Width = c.Width
	}
	if c.Height > 0 {
		def.Grid.Height = c.Height
	}

	registry, err := def.Registry()
	if err != nil {
		return world.Config{}, nil, err
	}
	worldCfg, err := def.WorldConfig(registry)
	if err != nil {
		return world.Config{}, nil, err
	}
	return worldCfg, registry, nil
}
