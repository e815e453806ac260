package world

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the world package.
var (
	ErrInvalidConfig = errors.New("invalid world config")
	ErrNoCandidate   = errors.New("no candidate cube")
	ErrOccupied      = errors.New("cube already occupied")
	ErrOutOfBounds   = errors.New("coordinates out of bounds")
)

// ConfigError describes a configuration problem found before generation.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Prefab identifies a template the host instantiates for a cube or an occupant.
type Prefab struct {
	ID   string
	Type CubeType // Cube type produced by cube generation zones
}

// ZoneGeneration describes one procedural growth pass.
type ZoneGeneration struct {
	Name             string
	Prefabs          []Prefab
	MinSources       int
	MaxSources       int
	MinSpread        int
	MaxSpread        int
	IsCubeGeneration bool // Replace the cube type instead of decorating it
}

// Validate checks the zone's ranges and prefab list.
func (z ZoneGeneration) Validate(base CubeType) error {
	field := func(name string) string {
		return fmt.Sprintf("zone %q %s", z.Name, name)
	}

	if len(z.Prefabs) == 0 {
		return &ConfigError{Field: field("prefabs"), Reason: "must not be empty"}
	}
	if z.MinSources < 0 || z.MaxSources < z.MinSources {
		return &ConfigError{
			Field:  field("sources"),
			Reason: fmt.Sprintf("range [%d, %d] is invalid", z.MinSources, z.MaxSources),
		}
	}
	if z.MinSpread < 0 || z.MaxSpread < z.MinSpread {
		return &ConfigError{
			Field:  field("spread"),
			Reason: fmt.Sprintf("range [%d, %d] is invalid", z.MinSpread, z.MaxSpread),
		}
	}
	for _, p := range z.Prefabs {
		if p.ID == "" {
			return &ConfigError{Field: field("prefabs"), Reason: "prefab id must not be empty"}
		}
		if z.IsCubeGeneration && p.Type == base {
			return &ConfigError{
				Field:  field("prefabs"),
				Reason: fmt.Sprintf("prefab %q produces the base type %s", p.ID, base),
			}
		}
	}
	return nil
}

// Config holds everything the World needs to build a grid.
type Config struct {
	SizeX int
	SizeZ int

	BaseType   CubeType // Type every cube starts as
	LiquidType CubeType // Type that blocks growth and triggers shore lining
	LiningType CubeType // Type base cubes next to liquid become
	LineShore  bool     // Run the shoreline pass

	// Zones run in order: cube generation zones first, then decoration zones.
	Zones []ZoneGeneration

	// MaxWalkSteps bounds each spread walk. Zero selects DefaultMaxWalkSteps.
	MaxWalkSteps int
}

// DefaultMaxWalkSteps bounds a single spread walk when the config leaves it unset.
const DefaultMaxWalkSteps = 1024

// DefaultConfig returns a grass island with water shored by dirt and no zones.
func DefaultConfig(sizeX, sizeZ int) Config {
	return Config{
		SizeX:      sizeX,
		SizeZ:      sizeZ,
		BaseType:   Grass,
		LiquidType: Water,
		LiningType: Dirt,
		LineShore:  true,
	}
}

// Validate checks the config before any generation work runs.
func (c Config) Validate() error {
	if c.SizeX <= 0 || c.SizeZ <= 0 {
		return &ConfigError{
			Field:  "size",
			Reason: fmt.Sprintf("grid %dx%d must be positive", c.SizeX, c.SizeZ),
		}
	}
	if c.MaxWalkSteps < 0 {
		return &ConfigError{Field: "max_walk_steps", Reason: "must not be negative"}
	}
	if c.LineShore && c.LiningType == c.LiquidType {
		return &ConfigError{Field: "lining_type", Reason: "must differ from the liquid type"}
	}
	for _, z := range c.Zones {
		if err := z.Validate(c.BaseType); err != nil {
			return err
		}
	}
	return nil
}
