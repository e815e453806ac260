package gamedata

import (
	"fmt"

	"github.com/samdwyer/tuskwalk/internal/world"
)

// GridDef is the grid size section of a world definition.
type GridDef struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// TilesDef names the cube types playing each generation role.
type TilesDef struct {
	Base   string `yaml:"base" json:"base"`
	Liquid string `yaml:"liquid" json:"liquid"`
	Lining string `yaml:"lining" json:"lining"`
}

// ZoneDef defines one growth pass in data form.
type ZoneDef struct {
	Name       string   `yaml:"name" json:"name"`
	Prefabs    []string `yaml:"prefabs" json:"prefabs"`
	MinSources int      `yaml:"minSources" json:"minSources"`
	MaxSources int      `yaml:"maxSources" json:"maxSources"`
	MinSpread  int      `yaml:"minSpread" json:"minSpread"`
	MaxSpread  int      `yaml:"maxSpread" json:"maxSpread"`
	Cube       bool     `yaml:"cube" json:"cube"` // Replaces cube types instead of decorating
}

// WorldDef is the on-disk description of an island.
type WorldDef struct {
	Grid         GridDef     `yaml:"grid" json:"grid"`
	Tiles        TilesDef    `yaml:"tiles" json:"tiles"`
	LineShore    bool        `yaml:"lineShore" json:"lineShore"`
	MaxWalkSteps int         `yaml:"maxWalkSteps" json:"maxWalkSteps"`
	Prefabs      []PrefabDef `yaml:"prefabs" json:"prefabs"`
	Zones        []ZoneDef   `yaml:"zones" json:"zones"`
}

// LoadWorldDef loads the embedded world.yaml.
func LoadWorldDef() (WorldDef, error) {
	return Load[WorldDef]("world.yaml")
}

// LoadWorldDefFile loads a world definition from disk.
func LoadWorldDefFile(path string) (WorldDef, error) {
	return LoadFile[WorldDef](path)
}

// Registry builds a prefab registry from the definition's prefabs.
func (d WorldDef) Registry() (*PrefabRegistry, error) {
	return NewPrefabRegistry(d.Prefabs)
}

// WorldConfig converts the definition into a world.Config, resolving
// zone prefab IDs through reg.
func (d WorldDef) WorldConfig(reg *PrefabRegistry) (world.Config, error) {
	var cfg world.Config

	base, err := world.ParseCubeType(d.Tiles.Base)
	if err != nil {
		return cfg, fmt.Errorf("tiles.base: %w", err)
	}
	liquid, err := world.ParseCubeType(d.Tiles.Liquid)
	if err != nil {
		return cfg, fmt.Errorf("tiles.liquid: %w", err)
	}
	lining, err := world.ParseCubeType(d.Tiles.Lining)
	if err != nil {
		return cfg, fmt.Errorf("tiles.lining: %w", err)
	}

	cfg = world.Config{
		SizeX:        d.Grid.Width,
		SizeZ:        d.Grid.Height,
		BaseType:     base,
		LiquidType:   liquid,
		LiningType:   lining,
		LineShore:    d.LineShore,
		MaxWalkSteps: d.MaxWalkSteps,
	}

	for _, z := range d.Zones {
		defs, err := reg.GetMultiple(z.Prefabs)
		if err != nil {
			return cfg, fmt.Errorf("zone %q: %w", z.Name, err)
		}
		zone := world.ZoneGeneration{
			Name:             z.Name,
			MinSources:       z.MinSources,
			MaxSources:       z.MaxSources,
			MinSpread:        z.MinSpread,
			MaxSpread:        z.MaxSpread,
			IsCubeGeneration: z.Cube,
		}
		for _, def := range defs {
			if z.Cube != (def.Kind == KindCube) {
				return cfg, fmt.Errorf("zone %q: prefab %s has kind %s", z.Name, def.ID, def.Kind)
			}
			prefab, err := def.Prefab()
			if err != nil {
				return cfg, err
			}
			zone.Prefabs = append(zone.Prefabs, prefab)
		}
		cfg.Zones = append(cfg.Zones, zone)
	}

	return cfg, cfg.Validate()
}
