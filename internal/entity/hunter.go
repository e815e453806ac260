package entity

import (
	"time"

	"go.uber.org/zap"

	"github.com/samdwyer/tuskwalk/internal/combat"
	"github.com/samdwyer/tuskwalk/internal/world"
)

// HunterState is the hunter's AI state.
type HunterState int

const (
	Roaming HunterState = iota
	Aggroed
	Retreating
	Fleeing
)

// String returns the state name.
func (s HunterState) String() string {
	switch s {
	case Roaming:
		return "roaming"
	case Aggroed:
		return "aggroed"
	case Retreating:
		return "retreating"
	case Fleeing:
		return "fleeing"
	default:
		return "unknown"
	}
}

// Prey is what the hunter chases and throws spears at.
type Prey interface {
	Coordinates() world.GridCoordinates
	WorldPosition() world.Vec3
	IsAlive() bool
}

// HunterStepDistance is how many cubes the hunter moves per step.
const HunterStepDistance = 1

// HunterTiming is the hunter's movement transition timing.
var HunterTiming = Timing{
	Rotate:   250 * time.Millisecond,
	Move:     250 * time.Millisecond,
	Cooldown: 150 * time.Millisecond,
}

// HunterSettings tunes the hunter's AI.
type HunterSettings struct {
	AggroRadius      float64       // Prey closer than this triggers pursuit
	AggroMaxTime     time.Duration // Pursuit gives up after this long; zero never gives up
	RetreatTolerance float64       // Closer to the origin than this counts as home
	FleeTrigger      float64       // Prey this close scares off a roaming hunter; zero disables
	FleeMaxDistance  float64       // Fleeing ends beyond this distance
	AttackRange      float64
	AttackCooldown   time.Duration
	SpearSpeed       float64
	SpearDamage      int
	MaxRetries       int // Extra direction choices after a blocked move
}

// DefaultHunterSettings returns the standard hunter tuning.
func DefaultHunterSettings() HunterSettings {
	return HunterSettings{
		AggroRadius:      15,
		RetreatTolerance: 1,
		FleeMaxDistance:  10,
		AttackRange:      8,
		AttackCooldown:   2 * time.Second,
		SpearSpeed:       6,
		SpearDamage:      1,
		MaxRetries:       4,
	}
}

// Hunter is the pursuer. It roams randomly, chases prey that comes close,
// throws spears in range and walks home when the chase ends.
type Hunter struct {
	Mover
	settings HunterSettings
	rng      world.Rand
	logger   *zap.Logger

	state          HunterState
	origin         world.GridCoordinates // Where the last chase started
	aggroTime      time.Duration
	attackCooldown time.Duration
}

// NewHunter creates a hunter on w. logger may be nil.
func NewHunter(w *world.World, rng world.Rand, settings HunterSettings, logger *zap.Logger) *Hunter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hunter{
		Mover:    NewMover(w, HunterStepDistance, false, HunterTiming),
		settings: settings,
		rng:      rng,
		logger:   logger,
	}
}

// Spawn places the hunter on c, roaming and ready to attack.
func (h *Hunter) Spawn(c *world.Cube) {
	h.Place(c)
	h.state = Roaming
	h.origin = c.Coordinates()
	h.aggroTime = 0
	h.attackCooldown = 0
}

// State returns the current AI state.
func (h *Hunter) State() HunterState { return h.state }

// Origin returns where the hunter retreats to.
func (h *Hunter) Origin() world.GridCoordinates { return h.origin }

// Step advances timers, updates the AI state, moves when unlocked and
// returns a spear if one was thrown this step.
func (h *Hunter) Step(dt time.Duration, prey Prey) *combat.Spear {
	if h.Current() == nil {
		return nil
	}
	h.Mover.Step(dt)
	if h.attackCooldown > 0 {
		h.attackCooldown -= dt
	}

	h.updateState(dt, prey)

	var spear *combat.Spear
	if h.canAttack(prey) {
		spear = combat.NewSpear(h.WorldPosition(), prey.WorldPosition(), h.settings.SpearSpeed, h.settings.SpearDamage)
		h.attackCooldown = h.settings.AttackCooldown
	}

	if !h.Locked() {
		h.decide(prey)
	}
	return spear
}

// Flee makes the hunter run from its prey until the prey is farther away
// than FleeMaxDistance. A chase in progress is abandoned.
func (h *Hunter) Flee() {
	if h.state != Fleeing {
		h.transition(Fleeing)
	}
}

func (h *Hunter) updateState(dt time.Duration, prey Prey) {
	alive := prey != nil && prey.IsAlive()
	distance := 0.0
	if alive {
		distance = world.Distance(h.WorldPosition(), prey.WorldPosition())
	}

	switch h.state {
	case Roaming:
		if !alive {
			return
		}
		if h.settings.FleeTrigger > 0 && distance <= h.settings.FleeTrigger {
			h.transition(Fleeing)
		} else if distance < h.settings.AggroRadius {
			h.origin = h.Coordinates()
			h.aggroTime = 0
			h.transition(Aggroed)
		}
	case Aggroed:
		h.aggroTime += dt
		expired := h.settings.AggroMaxTime > 0 && h.aggroTime >= h.settings.AggroMaxTime
		if !alive || distance >= h.settings.AggroRadius || expired {
			h.transition(Retreating)
		}
	case Retreating:
		home := world.Distance(h.WorldPosition(), h.origin.WorldPosition())
		if home < h.settings.RetreatTolerance {
			h.transition(Roaming)
		}
	case Fleeing:
		if !alive || distance > h.settings.FleeMaxDistance {
			h.transition(Roaming)
		}
	}
}

func (h *Hunter) transition(to HunterState) {
	h.logger.Debug("hunter state changed",
		zap.Stringer("from", h.state),
		zap.Stringer("to", to),
		zap.Int("x", h.Coordinates().X),
		zap.Int("z", h.Coordinates().Z),
	)
	h.state = to
}

func (h *Hunter) canAttack(prey Prey) bool {
	if prey == nil || !prey.IsAlive() || h.state == Fleeing || h.attackCooldown > 0 {
		return false
	}
	return world.Distance(h.WorldPosition(), prey.WorldPosition()) <= h.settings.AttackRange
}

// decide picks a direction for the current state and moves. A blocked move
// is retried at once: the secondary axis first when there is one, then
// random cardinals, until the retry budget runs out.
func (h *Hunter) decide(prey Prey) {
	primary, secondary, greedy := h.directions(prey)
	if h.TryMove(primary) {
		return
	}
	for i := 0; i < h.settings.MaxRetries; i++ {
		axis := h.randomCardinal()
		if i == 0 && greedy {
			axis = secondary
		}
		if h.TryMove(axis) {
			return
		}
	}
}

// directions returns the preferred and fallback axes for the current state.
func (h *Hunter) directions(prey Prey) (primary, secondary world.Axis, greedy bool) {
	here := h.Coordinates()
	switch {
	case h.state == Aggroed && prey != nil:
		primary, secondary = towards(here, prey.Coordinates())
		return primary, secondary, true
	case h.state == Retreating:
		primary, secondary = towards(here, h.origin)
		return primary, secondary, true
	case h.state == Fleeing && prey != nil:
		primary, secondary = towards(here, prey.Coordinates())
		return opposite(primary), opposite(secondary), true
	default:
		return h.randomCardinal(), 0, false
	}
}

func (h *Hunter) randomCardinal() world.Axis {
	return world.Cardinals[h.rng.Intn(len(world.Cardinals))]
}

// towards returns the axis closing the larger gap to target, ties going to
// the x axis, and the axis closing the other gap.
func towards(from, target world.GridCoordinates) (primary, secondary world.Axis) {
	dx := from.X - target.X
	dz := from.Z - target.Z

	xAxis := world.East
	if dx >= 0 {
		xAxis = world.West
	}
	zAxis := world.North
	if dz >= 0 {
		zAxis = world.South
	}

	if abs(dx) >= abs(dz) {
		return xAxis, zAxis
	}
	return zAxis, xAxis
}

func opposite(axis world.Axis) world.Axis {
	switch axis {
	case world.North:
		return world.South
	case world.South:
		return world.North
	case world.East:
		return world.West
	case world.West:
		return world.East
	default:
		return axis
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
