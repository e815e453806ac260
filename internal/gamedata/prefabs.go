package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tuskwalk/internal/world"
)

// PrefabKind says what a prefab instantiates.
type PrefabKind string

const (
	// KindCube prefabs become grid cubes.
	KindCube PrefabKind = "cube"
	// KindObject prefabs become occupants on a cube.
	KindObject PrefabKind = "object"
)

// PrefabDef defines a cube or occupant template loaded from data.
type PrefabDef struct {
	ID       string     `yaml:"id" json:"id"`             // Unique identifier (e.g., "water_cube")
	Name     string     `yaml:"name" json:"name"`         // Display name
	Kind     PrefabKind `yaml:"kind" json:"kind"`         // cube or object
	CubeType string     `yaml:"cubeType" json:"cubeType"` // Cube type produced by cube prefabs
	Glyph    string     `yaml:"glyph" json:"glyph"`       // Single character for rendering
	Color    string     `yaml:"color" json:"color"`       // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (p *PrefabDef) GlyphRune() rune {
	for _, r := range p.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the prefab color, or white if it does not parse.
func (p *PrefabDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Prefab converts the definition into the world's template reference.
func (p *PrefabDef) Prefab() (world.Prefab, error) {
	prefab := world.Prefab{ID: p.ID}
	if p.Kind != KindCube {
		return prefab, nil
	}
	t, err := world.ParseCubeType(p.CubeType)
	if err != nil {
		return prefab, fmt.Errorf("prefab %s: %w", p.ID, err)
	}
	prefab.Type = t
	return prefab, nil
}

// Validate checks the definition's required fields.
func (p *PrefabDef) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("prefab without id")
	}
	switch p.Kind {
	case KindCube:
		if _, err := world.ParseCubeType(p.CubeType); err != nil {
			return fmt.Errorf("prefab %s: %w", p.ID, err)
		}
	case KindObject:
	default:
		return fmt.Errorf("prefab %s: unknown kind %q", p.ID, p.Kind)
	}
	if _, err := ParseHexColor(p.Color); err != nil {
		return fmt.Errorf("prefab %s: %w", p.ID, err)
	}
	return nil
}
