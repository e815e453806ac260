package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tuskwalk/internal/world"
)

type focusCall struct {
	pos  world.GridCoordinates
	snap bool
}

type recordingFocus struct {
	calls []focusCall
}

func (r *recordingFocus) Focus(pos world.GridCoordinates, snap bool) {
	r.calls = append(r.calls, focusCall{pos, snap})
}

func TestElephantSpawnFocuses(t *testing.T) {
	w := newWorld(t, 10, 10)
	focus := &recordingFocus{}
	e := NewElephant(w, focus)

	e.Spawn(cubeAt(t, w, 3, 3))
	require.Len(t, focus.calls, 1)
	assert.Equal(t, focusCall{world.GridCoordinates{X: 3, Z: 3}, true}, focus.calls[0])
	assert.Equal(t, ElephantMaxHealth, e.Health().Current())
	assert.True(t, e.IsAlive())

	require.True(t, e.Move(world.East))
	require.Len(t, focus.calls, 2)
	assert.Equal(t, focusCall{world.GridCoordinates{X: 5, Z: 3}, false}, focus.calls[1])
}

func TestElephantHopsTwoCubes(t *testing.T) {
	w := newWorld(t, 10, 10)
	e := NewElephant(w, nil)
	e.Spawn(cubeAt(t, w, 4, 4))

	require.True(t, e.Move(world.North))
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 6}, e.Coordinates())
}

func TestElephantBacksOffFromOccupiedLanding(t *testing.T) {
	w := newWorld(t, 10, 10)
	e := NewElephant(w, nil)
	e.Spawn(cubeAt(t, w, 4, 4))
	occupy(t, w, 4, 6)

	require.True(t, e.Move(world.North))
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 5}, e.Coordinates())
}

func TestElephantBlockedMoveIsNoop(t *testing.T) {
	w := newWorld(t, 10, 10)
	focus := &recordingFocus{}
	e := NewElephant(w, focus)
	start := cubeAt(t, w, 4, 4)
	e.Spawn(start)
	occupy(t, w, 4, 5)
	occupy(t, w, 4, 6)

	assert.False(t, e.Move(world.North))
	assert.Same(t, start, e.Current())
	assert.False(t, e.Locked())
	assert.Len(t, focus.calls, 1, "no focus update without a move")
}

func TestElephantDeath(t *testing.T) {
	w := newWorld(t, 10, 10)
	e := NewElephant(w, nil)
	e.Spawn(cubeAt(t, w, 4, 4))

	deaths := 0
	e.OnDeath(func() { deaths++ })

	for i := 0; i < ElephantMaxHealth; i++ {
		assert.Equal(t, 1, e.Damage(1))
	}
	assert.False(t, e.IsAlive())
	assert.Equal(t, 1, deaths)
	assert.False(t, e.Move(world.North), "a dead elephant cannot move")

	e.Spawn(cubeAt(t, w, 2, 2))
	assert.True(t, e.IsAlive())
}
