package world

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/samdwyer/tuskwalk/internal/telemetry"
)

// Rand is the random source generation and searches draw from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Listener is told about every grid mutation so a visual layer can
// instantiate or destroy the matching renderables.
type Listener interface {
	CubeReplaced(c *Cube, from CubeType)
	OccupantChanged(c *Cube, prev *Occupant)
}

// NopListener ignores all grid mutations.
type NopListener struct{}

func (NopListener) CubeReplaced(*Cube, CubeType)     {}
func (NopListener) OccupantChanged(*Cube, *Occupant) {}

// Option configures a World.
type Option func(*World)

// WithListener routes grid mutations to l.
func WithListener(l Listener) Option {
	return func(w *World) {
		if l != nil {
			w.listener = l
		}
	}
}

// WithLogger sets the logger used for generation summaries.
func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// GenerationStats summarizes what a Generate call did.
type GenerationStats struct {
	Sources           int              // Growth heads placed
	SpreadApplied     int              // Cubes mutated by spread walks
	LiquidPassThrough int              // Walk steps that crossed liquid without spending budget
	TruncatedWalks    int              // Walks stopped before their budget was spent
	ShoreTiles        int              // Base cubes converted by the shoreline pass
	Counts            map[CubeType]int // Cube counts after generation
}

// World owns the cube grid, runs generation passes and answers adjacency queries.
// A World is driven from a single goroutine.
type World struct {
	cfg      Config
	cells    []Cube // x-major arena, index x*SizeZ+z
	rng      Rand
	listener Listener
	logger   *zap.Logger
	ready    bool
}

// New validates the config and returns an empty world.
// The grid is populated by Generate.
func New(cfg Config, rng Rand, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &ConfigError{Field: "rng", Reason: "random source is required"}
	}
	if cfg.MaxWalkSteps == 0 {
		cfg.MaxWalkSteps = DefaultMaxWalkSteps
	}

	w := &World{
		cfg:      cfg,
		rng:      rng,
		listener: NopListener{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// SizeX returns the grid width.
func (w *World) SizeX() int { return w.cfg.SizeX }

// SizeZ returns the grid depth.
func (w *World) SizeZ() int { return w.cfg.SizeZ }

// Config returns the config the world was built with.
func (w *World) Config() Config { return w.cfg }

// Ready reports whether Generate has completed.
func (w *World) Ready() bool { return w.ready }

// Generate builds the grid: base fill, cube zones, decoration zones, shoreline.
func (w *World) Generate(ctx context.Context) (GenerationStats, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()
	stats := GenerationStats{}
	w.ready = false

	w.createGrid(w.cfg.BaseType)

	// Region zones run before decorations so decorations see the final tile types
	for _, cubeZones := range []bool{true, false} {
		for _, zone := range w.cfg.Zones {
			if zone.IsCubeGeneration != cubeZones {
				continue
			}
			if err := ctx.Err(); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "cancelled")
				return stats, err
			}
			if err := w.generateZone(zone, &stats); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "zone generation failed")
				return stats, err
			}
		}
	}

	if w.cfg.LineShore {
		stats.ShoreTiles = w.lineShore()
	}

	stats.Counts = w.countTypes()
	w.ready = true

	fingerprint := w.Fingerprint()

	// Record telemetry
	span.SetAttributes(
		attribute.Int("world.size_x", w.cfg.SizeX),
		attribute.Int("world.size_z", w.cfg.SizeZ),
		attribute.Int("world.zone_count", len(w.cfg.Zones)),
		attribute.Int("world.sources", stats.Sources),
		attribute.Int("world.spread_applied", stats.SpreadApplied),
		attribute.Int("world.truncated_walks", stats.TruncatedWalks),
		attribute.Int("world.shore_tiles", stats.ShoreTiles),
		attribute.Int("world.water_tiles", stats.Counts[Water]),
		attribute.String("world.fingerprint", fmt.Sprintf("%016x", fingerprint)),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)

	w.logger.Info("world generated",
		zap.Int("size_x", w.cfg.SizeX),
		zap.Int("size_z", w.cfg.SizeZ),
		zap.Int("sources", stats.Sources),
		zap.Int("spread_applied", stats.SpreadApplied),
		zap.Int("liquid_pass_through", stats.LiquidPassThrough),
		zap.Int("truncated_walks", stats.TruncatedWalks),
		zap.Int("shore_tiles", stats.ShoreTiles),
		zap.String("fingerprint", fmt.Sprintf("%016x", fingerprint)),
	)

	return stats, nil
}

// createGrid fills every coordinate with a fresh cube of the base type.
func (w *World) createGrid(base CubeType) {
	w.cells = make([]Cube, w.cfg.SizeX*w.cfg.SizeZ)
	for x := 0; x < w.cfg.SizeX; x++ {
		for z := 0; z < w.cfg.SizeZ; z++ {
			w.cells[w.index(x, z)] = Cube{
				coordinates: GridCoordinates{X: x, Z: z},
				cubeType:    base,
			}
		}
	}
}

// generateZone places the zone's sources and spreads each one.
func (w *World) generateZone(zone ZoneGeneration, stats *GenerationStats) error {
	numSources := w.randRange(zone.MinSources, zone.MaxSources)

	for i := 0; i < numSources; i++ {
		source, ok := w.RandomCubeOfType(w.cfg.BaseType, true)
		if !ok {
			return fmt.Errorf("zone %q source %d: %w", zone.Name, i, ErrNoCandidate)
		}

		// One prefab per source, reused for its whole spread
		prefab := zone.Prefabs[w.rng.Intn(len(zone.Prefabs))]
		w.applyZone(zone, prefab, source)
		stats.Sources++

		w.spreadZone(zone, prefab, source, stats)
	}
	return nil
}

// spreadZone walks from the source, mutating cubes until the drawn spread is spent.
// Liquid cubes move the head without spending budget.
func (w *World) spreadZone(zone ZoneGeneration, prefab Prefab, head *Cube, stats *GenerationStats) {
	numSpread := w.randRange(zone.MinSpread, zone.MaxSpread)
	spreadCount := 0

	for steps := 0; spreadCount < numSpread; steps++ {
		if steps >= w.cfg.MaxWalkSteps {
			w.truncated(zone, head, "step budget exhausted", spreadCount, numSpread, stats)
			return
		}

		next, ok := w.RandomAdjacent(head, true)
		if !ok {
			w.truncated(zone, head, "head enclosed", spreadCount, numSpread, stats)
			return
		}

		if next.cubeType == w.cfg.LiquidType {
			head = next
			stats.LiquidPassThrough++
			continue
		}

		w.applyZone(zone, prefab, next)
		head = next
		spreadCount++
		stats.SpreadApplied++
	}
}

func (w *World) truncated(zone ZoneGeneration, head *Cube, reason string, done, want int, stats *GenerationStats) {
	stats.TruncatedWalks++
	w.logger.Debug("spread walk truncated",
		zap.String("zone", zone.Name),
		zap.String("reason", reason),
		zap.Int("x", head.coordinates.X),
		zap.Int("z", head.coordinates.Z),
		zap.Int("spread", done),
		zap.Int("wanted", want),
	)
}

// applyZone replaces or decorates the cube according to the zone kind.
func (w *World) applyZone(zone ZoneGeneration, prefab Prefab, c *Cube) {
	if zone.IsCubeGeneration {
		w.replace(c, prefab.Type)
		return
	}
	w.attach(c, prefab.ID)
}

// lineShore converts base cubes touching liquid into the lining type.
// Conversions made earlier in the pass are visible to later cubes.
func (w *World) lineShore() int {
	converted := 0
	for x := 0; x < w.cfg.SizeX; x++ {
		for z := 0; z < w.cfg.SizeZ; z++ {
			c := &w.cells[w.index(x, z)]
			if c.cubeType != w.cfg.BaseType {
				continue
			}
			if w.touchesType(c, w.cfg.LiquidType) {
				w.replace(c, w.cfg.LiningType)
				converted++
			}
		}
	}
	return converted
}

// touchesType reports whether any of the 8 neighbors has type t.
func (w *World) touchesType(c *Cube, t CubeType) bool {
	for _, axis := range Neighborhood {
		if n, ok := w.Adjacent(c, axis, false, 1); ok && n.cubeType == t {
			return true
		}
	}
	return false
}

// replace swaps the cube in its slot for a cube of type t with no occupant.
func (w *World) replace(c *Cube, t CubeType) {
	from := c.cubeType
	prev := c.occupant
	*c = Cube{coordinates: c.coordinates, cubeType: t}
	if prev != nil {
		w.listener.OccupantChanged(c, prev)
	}
	w.listener.CubeReplaced(c, from)
}

// attach puts a new occupant created from prefab on the cube.
func (w *World) attach(c *Cube, prefab string) *Occupant {
	prev := c.occupant
	c.occupant = &Occupant{ID: uuid.NewString(), Prefab: prefab}
	w.listener.OccupantChanged(c, prev)
	return c.occupant
}

// Replace changes the type of the cube at coords, dropping its occupant.
func (w *World) Replace(coords GridCoordinates, t CubeType) (*Cube, error) {
	c, ok := w.At(coords)
	if !ok {
		return nil, fmt.Errorf("replace %v: %w", coords, ErrOutOfBounds)
	}
	w.replace(c, t)
	return c, nil
}

// Occupy spawns an occupant from prefab on the cube at coords.
func (w *World) Occupy(coords GridCoordinates, prefab string) (*Occupant, error) {
	c, ok := w.At(coords)
	if !ok {
		return nil, fmt.Errorf("occupy %v: %w", coords, ErrOutOfBounds)
	}
	if c.IsOccupied() {
		return nil, fmt.Errorf("occupy %v: %w", coords, ErrOccupied)
	}
	return w.attach(c, prefab), nil
}

// Vacate removes the occupant from the cube at coords, if any.
func (w *World) Vacate(coords GridCoordinates) error {
	c, ok := w.At(coords)
	if !ok {
		return fmt.Errorf("vacate %v: %w", coords, ErrOutOfBounds)
	}
	if c.occupant == nil {
		return nil
	}
	prev := c.occupant
	c.occupant = nil
	w.listener.OccupantChanged(c, prev)
	return nil
}

// randRange returns a uniform int in [min, max].
func (w *World) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + w.rng.Intn(max-min+1)
}

func (w *World) index(x, z int) int {
	return x*w.cfg.SizeZ + z
}

func (w *World) countTypes() map[CubeType]int {
	counts := make(map[CubeType]int, 3)
	for i := range w.cells {
		counts[w.cells[i].cubeType]++
	}
	return counts
}
