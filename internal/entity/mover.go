// Package entity provides the agents that walk the island grid.
package entity

import (
	"math"
	"time"

	"github.com/samdwyer/tuskwalk/internal/world"
)

// Timing holds the durations of one movement transition.
type Timing struct {
	Rotate   time.Duration // Turning to face a new direction
	Move     time.Duration // Travelling between cubes
	Cooldown time.Duration // Pause before the next move is accepted
}

type movePhase int

const (
	phaseIdle movePhase = iota
	phaseRotating
	phaseMoving
	phaseCooldown
)

// Facing returns the yaw in degrees an agent takes when moving along axis.
// Only cardinal axes have a facing.
func Facing(axis world.Axis) (float64, bool) {
	switch axis {
	case world.North:
		return 180, true
	case world.South:
		return 0, true
	case world.West:
		return 90, true
	case world.East:
		return 270, true
	default:
		return 0, false
	}
}

// Mover resolves cardinal movement requests against the world grid.
// A move locks the mover until rotation, travel and cooldown have elapsed;
// requests made while locked are dropped.
type Mover struct {
	world             *world.World
	current           *world.Cube
	previous          *world.Cube
	facing            float64
	distance          int
	requireUnoccupied bool
	timing            Timing

	phase     movePhase
	remaining time.Duration
}

// NewMover creates a mover that steps distance cubes at a time.
func NewMover(w *world.World, distance int, requireUnoccupied bool, timing Timing) Mover {
	return Mover{
		world:             w,
		distance:          distance,
		requireUnoccupied: requireUnoccupied,
		timing:            timing,
	}
}

// Place puts the mover on c and clears any lock.
func (m *Mover) Place(c *world.Cube) {
	m.current = c
	m.previous = nil
	m.phase = phaseIdle
	m.remaining = 0
}

// Current returns the cube the mover stands on (or is travelling to).
func (m *Mover) Current() *world.Cube { return m.current }

// Previous returns the cube the mover last left, or nil.
func (m *Mover) Previous() *world.Cube { return m.previous }

// Coordinates returns the current cube's coordinates.
func (m *Mover) Coordinates() world.GridCoordinates {
	if m.current == nil {
		return world.GridCoordinates{}
	}
	return m.current.Coordinates()
}

// WorldPosition returns the current cube's world position.
func (m *Mover) WorldPosition() world.Vec3 {
	return m.Coordinates().WorldPosition()
}

// Facing returns the current yaw in degrees.
func (m *Mover) Facing() float64 { return m.facing }

// Locked reports whether a movement transition is in progress.
func (m *Mover) Locked() bool { return m.phase != phaseIdle }

// TryMove requests a move along a cardinal axis. It returns false, leaving
// the mover untouched, when locked or when no distinct destination exists.
func (m *Mover) TryMove(axis world.Axis) bool {
	if m.Locked() || m.current == nil {
		return false
	}
	facing, ok := Facing(axis)
	if !ok {
		return false
	}

	target, found := m.world.Adjacent(m.current, axis, m.requireUnoccupied, m.distance)
	if !found || target == m.current {
		return false
	}

	m.previous = m.current
	m.current = target

	if angleDiff(m.facing, facing) >= 1 && m.timing.Rotate > 0 {
		m.enter(phaseRotating)
	} else {
		m.enter(phaseMoving)
	}
	m.facing = facing
	return true
}

// Step advances the lock timers by dt. It returns true when the mover
// unlocks during this step.
func (m *Mover) Step(dt time.Duration) bool {
	if !m.Locked() {
		return false
	}
	for m.Locked() {
		if dt < m.remaining {
			m.remaining -= dt
			return false
		}
		dt -= m.remaining
		m.enter(m.phase + 1)
	}
	return true
}

// enter switches to phase p, skipping phases with no duration.
func (m *Mover) enter(p movePhase) {
	for {
		switch p {
		case phaseRotating:
			m.remaining = m.timing.Rotate
		case phaseMoving:
			m.remaining = m.timing.Move
		case phaseCooldown:
			m.remaining = m.timing.Cooldown
		default:
			m.phase = phaseIdle
			m.remaining = 0
			return
		}
		if m.remaining > 0 {
			m.phase = p
			return
		}
		p++
	}
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
