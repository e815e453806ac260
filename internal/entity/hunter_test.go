package entity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tuskwalk/internal/world"
)

type stubPrey struct {
	at   world.GridCoordinates
	dead bool
}

func (p *stubPrey) Coordinates() world.GridCoordinates { return p.at }
func (p *stubPrey) WorldPosition() world.Vec3          { return p.at.WorldPosition() }
func (p *stubPrey) IsAlive() bool                      { return !p.dead }

func newHunter(t *testing.T, w *world.World, settings HunterSettings, x, z int) *Hunter {
	t.Helper()
	h := NewHunter(w, rand.New(rand.NewSource(7)), settings, nil)
	h.Spawn(cubeAt(t, w, x, z))
	return h
}

func TestHunterStateString(t *testing.T) {
	tests := []struct {
		state    HunterState
		expected string
	}{
		{Roaming, "roaming"},
		{Aggroed, "aggroed"},
		{Retreating, "retreating"},
		{Fleeing, "fleeing"},
		{HunterState(9), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestTowards(t *testing.T) {
	from := world.GridCoordinates{X: 5, Z: 5}
	tests := []struct {
		name      string
		target    world.GridCoordinates
		primary   world.Axis
		secondary world.Axis
	}{
		{"west", world.GridCoordinates{X: 2, Z: 4}, world.West, world.South},
		{"east", world.GridCoordinates{X: 8, Z: 6}, world.East, world.North},
		{"north", world.GridCoordinates{X: 6, Z: 9}, world.North, world.East},
		{"south", world.GridCoordinates{X: 5, Z: 1}, world.South, world.West},
		{"tie goes to x", world.GridCoordinates{X: 8, Z: 8}, world.East, world.North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary, secondary := towards(from, tt.target)
			assert.Equal(t, tt.primary, primary)
			assert.Equal(t, tt.secondary, secondary)
		})
	}
}

func TestHunterRoamsWithoutPrey(t *testing.T) {
	w := newWorld(t, 10, 10)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)

	spear := h.Step(0, nil)
	assert.Nil(t, spear)
	assert.Equal(t, Roaming, h.State())
	assert.True(t, h.Locked(), "roaming hunter should have started a move")
	assert.Equal(t, 1.0, world.Distance(h.WorldPosition(), world.Vec3{X: 5, Z: 5}))
}

func TestHunterAggroesAndAttacks(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 10, Z: 5}}

	spear := h.Step(0, prey)
	assert.Equal(t, Aggroed, h.State())
	assert.Equal(t, world.GridCoordinates{X: 5, Z: 5}, h.Origin())
	assert.Equal(t, world.GridCoordinates{X: 6, Z: 5}, h.Coordinates(), "greedy step toward prey")
	require.NotNil(t, spear, "prey within attack range")
	assert.Equal(t, world.Vec3{X: 5, Z: 5}, spear.Position)
	assert.InDelta(t, 1.0, spear.Direction.X, 1e-9)

	assert.Nil(t, h.Step(time.Second, prey), "attack is on cooldown")
	assert.NotNil(t, h.Step(time.Second, prey), "cooldown elapsed")
}

func TestHunterOutOfAttackRange(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 5, Z: 17}}

	assert.Nil(t, h.Step(0, prey))
	assert.Equal(t, Aggroed, h.State())
	assert.Equal(t, world.GridCoordinates{X: 5, Z: 6}, h.Coordinates())
}

func TestHunterRetreatsHome(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 12, Z: 5}}

	h.Step(0, prey)
	require.Equal(t, Aggroed, h.State())

	prey.at = world.GridCoordinates{X: 28, Z: 28}
	h.Step(0, prey)
	require.Equal(t, Retreating, h.State())

	for i := 0; i < 50 && h.State() == Retreating; i++ {
		h.Step(100*time.Millisecond, prey)
	}
	assert.Equal(t, Roaming, h.State())
	assert.Equal(t, h.Origin(), h.Coordinates(), "retreat ends on the origin cube")
}

func TestHunterAggroMaxTime(t *testing.T) {
	w := newWorld(t, 30, 30)
	settings := DefaultHunterSettings()
	settings.AggroMaxTime = 300 * time.Millisecond
	h := newHunter(t, w, settings, 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 12, Z: 5}}

	h.Step(0, prey)
	require.Equal(t, Aggroed, h.State())

	h.Step(300*time.Millisecond, prey)
	assert.Equal(t, Retreating, h.State())
}

func TestHunterRetreatsWhenPreyDies(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 12, Z: 5}}

	h.Step(0, prey)
	require.Equal(t, Aggroed, h.State())

	prey.dead = true
	assert.Nil(t, h.Step(3*time.Second, prey))
	assert.Equal(t, Retreating, h.State())
}

func TestHunterStaysAggroedNextToPrey(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 9, Z: 5}}

	for i := 0; i < 20; i++ {
		h.Step(time.Second, prey)
		require.Equal(t, Aggroed, h.State(), "step %d", i)
	}
	assert.LessOrEqual(t, world.Distance(h.WorldPosition(), prey.WorldPosition()), 1.0)
	assert.Equal(t, world.GridCoordinates{X: 5, Z: 5}, h.Origin())
}

func TestHunterFlee(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 6, Z: 5}}

	h.Flee()
	assert.Nil(t, h.Step(0, prey), "a fleeing hunter does not attack")
	assert.Equal(t, Fleeing, h.State())
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 5}, h.Coordinates())

	prey.at = world.GridCoordinates{X: 25, Z: 25}
	h.Step(0, prey)
	assert.Equal(t, Roaming, h.State())
}

func TestHunterFleeTrigger(t *testing.T) {
	w := newWorld(t, 30, 30)
	settings := DefaultHunterSettings()
	settings.FleeTrigger = 1.5
	h := newHunter(t, w, settings, 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 6, Z: 5}}

	h.Step(0, prey)
	assert.Equal(t, Fleeing, h.State())
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 5}, h.Coordinates())
}

func TestHunterFleeTriggerOffByDefault(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 5, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 6, Z: 5}}

	h.Step(0, prey)
	assert.Equal(t, Aggroed, h.State())
}

func TestHunterRetriesBlockedMove(t *testing.T) {
	w := newWorld(t, 30, 30)
	h := newHunter(t, w, DefaultHunterSettings(), 0, 5)
	prey := &stubPrey{at: world.GridCoordinates{X: 1, Z: 5}}

	// Fleeing west runs off the grid, so the hunter takes the other axis
	h.Flee()
	h.Step(0, prey)
	require.Equal(t, Fleeing, h.State())
	assert.Equal(t, world.GridCoordinates{X: 0, Z: 6}, h.Coordinates())
}
