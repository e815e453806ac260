package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/tuskwalk/internal/world"
)

// PrefabRegistry holds loaded prefab definitions and provides lookup utilities.
type PrefabRegistry struct {
	prefabs map[string]*PrefabDef
	cubes   map[world.CubeType]*PrefabDef
	all     []PrefabDef
}

// NewPrefabRegistry creates a registry from loaded prefab definitions.
func NewPrefabRegistry(prefabs []PrefabDef) (*PrefabRegistry, error) {
	registry := &PrefabRegistry{
		prefabs: make(map[string]*PrefabDef, len(prefabs)),
		cubes:   make(map[world.CubeType]*PrefabDef),
		all:     prefabs,
	}
	for i := range prefabs {
		p := &prefabs[i]
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.prefabs[p.ID]; dup {
			return nil, fmt.Errorf("duplicate prefab id %q", p.ID)
		}
		registry.prefabs[p.ID] = p

		// The first cube prefab of each type renders that type
		if p.Kind == KindCube {
			t, _ := world.ParseCubeType(p.CubeType)
			if _, ok := registry.cubes[t]; !ok {
				registry.cubes[t] = p
			}
		}
	}
	return registry, nil
}

// LoadPrefabRegistry loads and creates a registry from the embedded world.yaml.
func LoadPrefabRegistry() (*PrefabRegistry, error) {
	def, err := LoadWorldDef()
	if err != nil {
		return nil, err
	}
	if len(def.Prefabs) == 0 {
		return nil, errors.New("no prefabs loaded from world.yaml")
	}
	return NewPrefabRegistry(def.Prefabs)
}

// MustLoadPrefabRegistry loads a registry, panicking on error.
func MustLoadPrefabRegistry() *PrefabRegistry {
	registry, err := LoadPrefabRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the prefab definition with the given ID, or nil if not found.
func (r *PrefabRegistry) GetByID(id string) *PrefabDef {
	return r.prefabs[id]
}

// ForCubeType returns the prefab that renders cubes of type t, or nil.
func (r *PrefabRegistry) ForCubeType(t world.CubeType) *PrefabDef {
	return r.cubes[t]
}

// GetMultiple returns prefab definitions for a list of IDs.
// Missing IDs are reported as an error.
func (r *PrefabRegistry) GetMultiple(ids []string) ([]*PrefabDef, error) {
	result := make([]*PrefabDef, 0, len(ids))
	for _, id := range ids {
		prefab := r.prefabs[id]
		if prefab == nil {
			return nil, fmt.Errorf("unknown prefab %q", id)
		}
		result = append(result, prefab)
	}
	return result, nil
}

// All returns all prefab definitions.
func (r *PrefabRegistry) All() []PrefabDef {
	return r.all
}

// Count returns the number of prefabs in the registry.
func (r *PrefabRegistry) Count() int {
	return len(r.all)
}
