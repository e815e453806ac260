// Package world provides island generation and grid adjacency queries.
package world

import (
	"fmt"
	"strings"
)

// CubeType tags what a cube is made of.
type CubeType int

const (
	// Grass is the base tile type every grid starts with.
	Grass CubeType = iota
	// Water is the liquid type produced by water zones.
	Water
	// Dirt lines the shore around water.
	Dirt
)

// String returns the lowercase type name.
func (t CubeType) String() string {
	switch t {
	case Grass:
		return "grass"
	case Water:
		return "water"
	case Dirt:
		return "dirt"
	default:
		return "unknown"
	}
}

// ParseCubeType converts a type name into a CubeType.
func ParseCubeType(s string) (CubeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grass":
		return Grass, nil
	case "water":
		return Water, nil
	case "dirt":
		return Dirt, nil
	default:
		return Grass, fmt.Errorf("unknown cube type %q", s)
	}
}

// Occupant is a decoration or interactive object sitting on a cube.
type Occupant struct {
	ID     string // Unique instance id
	Prefab string // Template the occupant was created from
}

// Cube is a single cell of the world grid.
// Cubes live in the World's arena; a replaced cube keeps its slot and
// coordinates but gets a new type and loses its occupant.
type Cube struct {
	coordinates GridCoordinates
	cubeType    CubeType
	occupant    *Occupant
}

// Coordinates returns the cube's grid coordinates.
func (c *Cube) Coordinates() GridCoordinates {
	return c.coordinates
}

// Type returns the cube's type.
func (c *Cube) Type() CubeType {
	return c.cubeType
}

// Occupant returns the object on the cube, or nil.
func (c *Cube) Occupant() *Occupant {
	return c.occupant
}

// IsOccupied returns true if an object sits on the cube.
func (c *Cube) IsOccupied() bool {
	return c.occupant != nil
}

// IsUnoccupied returns true if nothing sits on the cube.
func (c *Cube) IsUnoccupied() bool {
	return c.occupant == nil
}

// WorldPosition returns the position a renderable for this cube sits at.
func (c *Cube) WorldPosition() Vec3 {
	return c.coordinates.WorldPosition()
}
