package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/samdwyer/tuskwalk/internal/combat"
	"github.com/samdwyer/tuskwalk/internal/daynight"
	"github.com/samdwyer/tuskwalk/internal/entity"
	"github.com/samdwyer/tuskwalk/internal/telemetry"
	"github.com/samdwyer/tuskwalk/internal/world"
)

// ErrNoSpawn is returned when the generated world has no cube an agent can spawn on.
var ErrNoSpawn = errors.New("no spawn cube")

// SessionOption configures a Session.
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	focus    entity.Focuser
	listener world.Listener
	logger   *zap.Logger
	cycle    daynight.Config
	hunter   entity.HunterSettings
}

// WithFocuser makes the elephant report its position to f.
func WithFocuser(f entity.Focuser) SessionOption {
	return func(o *sessionOptions) { o.focus = f }
}

// WithWorldListener routes grid mutations to l.
func WithWorldListener(l world.Listener) SessionOption {
	return func(o *sessionOptions) { o.listener = l }
}

// WithLogger sets the session and world logger.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(o *sessionOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCycle overrides the day/night settings.
func WithCycle(cfg daynight.Config) SessionOption {
	return func(o *sessionOptions) { o.cycle = cfg }
}

// WithHunterSettings overrides the hunter's AI tuning.
func WithHunterSettings(s entity.HunterSettings) SessionOption {
	return func(o *sessionOptions) { o.hunter = s }
}

// Session is one playthrough on one generated island. It is driven by the
// host loop through Step and MovePlayer, and released with Teardown.
type Session struct {
	world    *world.World
	stats    world.GenerationStats
	elephant *entity.Elephant
	hunter   *entity.Hunter
	spears   []*combat.Spear
	cycle    *daynight.Cycle
	rng      world.Rand
	logger   *zap.Logger

	state      State
	elapsed    time.Duration
	hits       int
	onGameOver func()
}

// NewSession generates the world and spawns both agents. The elephant
// spawns on an unoccupied base cube; the hunter on liquid, or on the base
// type when the island has none.
func NewSession(ctx context.Context, cfg world.Config, rng world.Rand, opts ...SessionOption) (*Session, error) {
	o := sessionOptions{
		logger: zap.NewNop(),
		cycle:  daynight.DefaultConfig(),
		hunter: entity.DefaultHunterSettings(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	worldOpts := []world.Option{world.WithLogger(o.logger)}
	if o.listener != nil {
		worldOpts = append(worldOpts, world.WithListener(o.listener))
	}
	w, err := world.New(cfg, rng, worldOpts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid world config")
		return nil, err
	}
	stats, err := w.Generate(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "world generation failed")
		return nil, fmt.Errorf("generate world: %w", err)
	}

	s := &Session{
		world:  w,
		stats:  stats,
		cycle:  daynight.NewCycle(o.cycle),
		rng:    rng,
		logger: o.logger,
		state:  StatePlaying,
	}

	base, liquid := w.Config().BaseType, w.Config().LiquidType
	playerCube, ok := w.RandomCubeOfType(base, true)
	if !ok {
		err := fmt.Errorf("elephant: %w", ErrNoSpawn)
		span.RecordError(err)
		span.SetStatus(codes.Error, "no spawn cube")
		return nil, err
	}
	s.elephant = entity.NewElephant(w, o.focus)
	s.elephant.Spawn(playerCube)
	s.elephant.OnDeath(s.GameOver)

	hunterCube, ok := w.RandomCubeOfType(liquid, false)
	if !ok {
		hunterCube, ok = s.randomBaseExcept(playerCube)
	}
	if !ok {
		err := fmt.Errorf("hunter: %w", ErrNoSpawn)
		span.RecordError(err)
		span.SetStatus(codes.Error, "no spawn cube")
		return nil, err
	}
	s.hunter = entity.NewHunter(w, rng, o.hunter, o.logger)
	s.hunter.Spawn(hunterCube)

	span.SetAttributes(
		attribute.Int("elephant.x", playerCube.Coordinates().X),
		attribute.Int("elephant.z", playerCube.Coordinates().Z),
		attribute.Int("hunter.x", hunterCube.Coordinates().X),
		attribute.Int("hunter.z", hunterCube.Coordinates().Z),
		attribute.String("hunter.spawn_type", hunterCube.Type().String()),
	)
	s.logger.Info("session started",
		zap.Stringer("elephant", coordsStringer(playerCube.Coordinates())),
		zap.Stringer("hunter", coordsStringer(hunterCube.Coordinates())),
		zap.Stringer("hunter_spawn_type", hunterCube.Type()),
	)

	return s, nil
}

// randomBaseExcept picks an unoccupied base cube other than the given cube.
func (s *Session) randomBaseExcept(exclude *world.Cube) (*world.Cube, bool) {
	base := s.world.Config().BaseType
	var candidates []*world.Cube
	s.world.Cubes(func(c *world.Cube) bool {
		if c != exclude && c.Type() == base && c.IsUnoccupied() {
			candidates = append(candidates, c)
		}
		return true
	})
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}

// OnGameOver registers fn to run once when the game ends.
func (s *Session) OnGameOver(fn func()) { s.onGameOver = fn }

// MovePlayer asks the elephant to hop along axis. It returns whether it moved.
func (s *Session) MovePlayer(axis world.Axis) bool {
	if s.state != StatePlaying || s.elephant == nil {
		return false
	}
	return s.elephant.Move(axis)
}

// Step advances the session by dt: the clock, both agents and every spear.
func (s *Session) Step(dt time.Duration) {
	s.cycle.Step(dt)
	if s.state != StatePlaying || s.elephant == nil {
		return
	}
	s.elapsed += dt

	s.elephant.Step(dt)
	if spear := s.hunter.Step(dt, s.elephant); spear != nil {
		s.spears = append(s.spears, spear)
		s.logger.Debug("spear thrown",
			zap.Float64("x", spear.Position.X),
			zap.Float64("z", spear.Position.Z),
		)
	}

	active := s.spears[:0]
	for _, sp := range s.spears {
		res := sp.Step(dt, s.elephant)
		if res.Hit {
			s.hits++
			s.logger.Info("elephant hit",
				zap.Int("damage", res.Damage),
				zap.Int("health", s.elephant.Health().Current()),
			)
		}
		if !sp.Done() {
			active = append(active, sp)
		}
	}
	s.spears = active
}

// GameOver ends the session. Only the first call has any effect.
func (s *Session) GameOver() {
	if s.state == StateGameOver {
		return
	}
	s.state = StateGameOver

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(context.Background(), "session.game_over")
	span.SetAttributes(
		attribute.Int64("session.elapsed_ms", s.elapsed.Milliseconds()),
		attribute.Int("session.hits", s.hits),
		attribute.Int("session.days", s.cycle.Days()),
	)
	span.End()

	s.logger.Info("game over",
		zap.Duration("elapsed", s.elapsed),
		zap.Int("hits", s.hits),
	)
	if s.onGameOver != nil {
		s.onGameOver()
	}
}

// Teardown releases the agents and spears. The session does nothing after it.
func (s *Session) Teardown() {
	s.elephant = nil
	s.hunter = nil
	s.spears = nil
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// World returns the generated world.
func (s *Session) World() *world.World { return s.world }

// Stats returns what world generation did.
func (s *Session) Stats() world.GenerationStats { return s.stats }

// Elephant returns the player agent, or nil after Teardown.
func (s *Session) Elephant() *entity.Elephant { return s.elephant }

// Hunter returns the pursuer, or nil after Teardown.
func (s *Session) Hunter() *entity.Hunter { return s.hunter }

// Spears returns the spears in flight.
func (s *Session) Spears() []*combat.Spear { return s.spears }

// Cycle returns the day/night clock.
func (s *Session) Cycle() *daynight.Cycle { return s.cycle }

type coordsStringer world.GridCoordinates

func (c coordsStringer) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}
