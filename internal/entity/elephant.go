package entity

import (
	"time"

	"github.com/samdwyer/tuskwalk/internal/combat"
	"github.com/samdwyer/tuskwalk/internal/world"
)

// Focuser is told where the player is so the view can follow it.
type Focuser interface {
	Focus(pos world.GridCoordinates, snap bool)
}

const (
	// ElephantStepDistance is how many cubes the elephant hops per move.
	ElephantStepDistance = 2
	// ElephantMaxHealth is the elephant's starting health.
	ElephantMaxHealth = 3
)

// ElephantTiming is the elephant's movement transition timing.
var ElephantTiming = Timing{
	Rotate:   500 * time.Millisecond,
	Move:     350 * time.Millisecond,
	Cooldown: 150 * time.Millisecond,
}

// Elephant is the player-controlled agent. It only lands on unoccupied cubes.
type Elephant struct {
	Mover
	health *Health
	focus  Focuser
}

// NewElephant creates an elephant on w. focus may be nil.
func NewElephant(w *world.World, focus Focuser) *Elephant {
	return &Elephant{
		Mover:  NewMover(w, ElephantStepDistance, true, ElephantTiming),
		health: NewHealth(ElephantMaxHealth),
		focus:  focus,
	}
}

// Spawn places the elephant on c with full health and snaps the view to it.
func (e *Elephant) Spawn(c *world.Cube) {
	e.Place(c)
	e.health.Reset()
	if e.focus != nil {
		e.focus.Focus(c.Coordinates(), true)
	}
}

// Move requests a hop along a cardinal axis. It is a no-op when locked
// or when no unoccupied destination exists.
func (e *Elephant) Move(axis world.Axis) bool {
	if e.health.IsDead() || !e.TryMove(axis) {
		return false
	}
	if e.focus != nil {
		e.focus.Focus(e.Coordinates(), false)
	}
	return true
}

// Health returns the elephant's health pool.
func (e *Elephant) Health() *Health { return e.health }

// OnDeath registers fn to run once when the elephant dies.
func (e *Elephant) OnDeath(fn func()) { e.health.OnDeath(fn) }

// Damage applies a hit and returns the damage actually taken.
func (e *Elephant) Damage(amount int) int { return e.health.Damage(amount) }

// IsAlive reports whether the elephant has health left.
func (e *Elephant) IsAlive() bool { return !e.health.IsDead() }

// Ensure Elephant can be hit by spears
var _ combat.Target = (*Elephant)(nil)
