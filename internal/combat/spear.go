// Package combat resolves thrown spears against a target.
package combat

import (
	"time"

	"github.com/samdwyer/tuskwalk/internal/world"
)

// Target is anything a spear can hit.
type Target interface {
	WorldPosition() world.Vec3
	Damage(amount int) int // Returns actual damage taken
	IsAlive() bool
}

const (
	// MaxLife is how long a spear flies before it is discarded.
	MaxLife = 4 * time.Second
	// DefaultHitRadius is how close a spear must pass to the target to hit.
	DefaultHitRadius = 0.5
)

// Spear is a projectile flying in a straight line.
type Spear struct {
	Position  world.Vec3
	Direction world.Vec3 // Unit length
	Speed     float64    // Units per second
	Damage    int
	HitRadius float64
	Age       time.Duration
	Stuck     bool // Hit the target and stopped
	Expired   bool // Outlived MaxLife without hitting
}

// Result describes what a single spear step did.
type Result struct {
	Hit     bool
	Damage  int // Damage actually dealt
	Expired bool
}

// NewSpear creates a spear at from, aimed at to.
func NewSpear(from, to world.Vec3, speed float64, damage int) *Spear {
	return &Spear{
		Position:  from,
		Direction: to.Sub(from).Normalize(),
		Speed:     speed,
		Damage:    damage,
		HitRadius: DefaultHitRadius,
	}
}

// Done reports whether the spear no longer needs stepping.
func (s *Spear) Done() bool {
	return s.Stuck || s.Expired
}

// Step advances the spear by dt and resolves a hit against target.
// The whole segment travelled this step is tested, so fast spears
// cannot pass through the target between frames.
func (s *Spear) Step(dt time.Duration, target Target) Result {
	if s.Done() {
		return Result{}
	}

	from := s.Position
	s.Position = from.Add(s.Direction.Scale(s.Speed * dt.Seconds()))
	s.Age += dt

	if target != nil && target.IsAlive() {
		if segmentDistance(from, s.Position, target.WorldPosition()) <= s.HitRadius {
			s.Stuck = true
			s.Position = target.WorldPosition()
			return Result{Hit: true, Damage: target.Damage(s.Damage)}
		}
	}

	if s.Age >= MaxLife {
		s.Expired = true
		return Result{Expired: true}
	}
	return Result{}
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(a, b, p world.Vec3) float64 {
	ab := b.Sub(a)
	lengthSq := ab.Dot(ab)
	if lengthSq == 0 {
		return world.Distance(a, p)
	}
	t := p.Sub(a).Dot(ab) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return world.Distance(a.Add(ab.Scale(t)), p)
}
