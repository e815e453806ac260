package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/tuskwalk/internal/world"
)

func TestFacing(t *testing.T) {
	tests := []struct {
		axis     world.Axis
		expected float64
		ok       bool
	}{
		{world.North, 180, true},
		{world.South, 0, true},
		{world.West, 90, true},
		{world.East, 270, true},
		{world.NorthEast, 0, false},
	}

	for _, tt := range tests {
		got, ok := Facing(tt.axis)
		assert.Equal(t, tt.ok, ok, "Facing(%s) ok", tt.axis)
		assert.Equal(t, tt.expected, got, "Facing(%s)", tt.axis)
	}
}

func TestTryMoveLocksThroughPhases(t *testing.T) {
	w := newWorld(t, 10, 10)
	m := NewMover(w, 2, true, ElephantTiming)
	m.Place(cubeAt(t, w, 4, 4))

	require.True(t, m.TryMove(world.North))
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 6}, m.Coordinates())
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 4}, m.Previous().Coordinates())
	assert.Equal(t, 180.0, m.Facing())
	assert.True(t, m.Locked())

	// Requests while locked are dropped, not queued
	assert.False(t, m.TryMove(world.East))
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 6}, m.Coordinates())

	assert.False(t, m.Step(500*time.Millisecond), "rotation done, still moving")
	assert.False(t, m.Step(350*time.Millisecond), "movement done, cooling down")
	assert.True(t, m.Locked())
	assert.True(t, m.Step(150*time.Millisecond), "cooldown done")
	assert.False(t, m.Locked())
	assert.False(t, m.Step(time.Second), "idle mover has nothing to unlock")

	assert.True(t, m.TryMove(world.East))
}

func TestTryMoveSameFacingSkipsRotation(t *testing.T) {
	w := newWorld(t, 10, 10)
	m := NewMover(w, 2, true, ElephantTiming)
	m.Place(cubeAt(t, w, 4, 4))

	// Facing starts at 0, which is south
	require.True(t, m.TryMove(world.South))
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 2}, m.Coordinates())
	assert.True(t, m.Step(500*time.Millisecond), "move plus cooldown without rotation")
}

func TestTryMoveIntoOccupiedIsNoop(t *testing.T) {
	w := newWorld(t, 10, 10)
	m := NewMover(w, 1, true, ElephantTiming)
	start := cubeAt(t, w, 4, 4)
	m.Place(start)
	occupy(t, w, 4, 5)

	assert.False(t, m.TryMove(world.North))
	assert.Same(t, start, m.Current())
	assert.Nil(t, m.Previous())
	assert.False(t, m.Locked())
}

func TestTryMoveIgnoresOccupancyWhenUnfiltered(t *testing.T) {
	w := newWorld(t, 10, 10)
	m := NewMover(w, 1, false, HunterTiming)
	m.Place(cubeAt(t, w, 4, 4))
	occupy(t, w, 4, 5)

	assert.True(t, m.TryMove(world.North))
	assert.Equal(t, world.GridCoordinates{X: 4, Z: 5}, m.Coordinates())
}

func TestTryMoveAtEdge(t *testing.T) {
	w := newWorld(t, 10, 10)
	m := NewMover(w, 2, true, ElephantTiming)
	start := cubeAt(t, w, 9, 3)
	m.Place(start)

	assert.False(t, m.TryMove(world.East))
	assert.Same(t, start, m.Current())
	assert.False(t, m.TryMove(world.NorthEast), "diagonals are not movement commands")
}

func TestTryMoveWithoutTimingNeverLocks(t *testing.T) {
	w := newWorld(t, 10, 10)
	m := NewMover(w, 1, true, Timing{})
	m.Place(cubeAt(t, w, 4, 4))

	require.True(t, m.TryMove(world.West))
	assert.False(t, m.Locked())
	require.True(t, m.TryMove(world.West))
	assert.Equal(t, world.GridCoordinates{X: 2, Z: 4}, m.Coordinates())
}

func TestAngleDiff(t *testing.T) {
	assert.Equal(t, 0.0, angleDiff(90, 90))
	assert.Equal(t, 90.0, angleDiff(0, 270))
	assert.Equal(t, 180.0, angleDiff(0, 180))
	assert.Equal(t, 10.0, angleDiff(355, 5))
}
