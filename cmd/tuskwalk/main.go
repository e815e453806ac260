// Package main is the entry point for tuskwalk.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/tuskwalk/internal/game"
	"github.com/samdwyer/tuskwalk/internal/gamedata"
	"github.com/samdwyer/tuskwalk/internal/logging"
	"github.com/samdwyer/tuskwalk/internal/telemetry"
	"github.com/samdwyer/tuskwalk/internal/ui"
	"github.com/samdwyer/tuskwalk/internal/world"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_TUSKWALK_API_KEY and TUSKWALK_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	seed := flag.Int64("seed", cfg.Seed, "island seed (0 picks one at random)")
	dump := flag.Bool("dump", false, "print the generated island and exit")
	flag.StringVar(&cfg.WorldFile, "world", cfg.WorldFile, "world definition file (YAML or JSON)")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file path (empty disables logging)")
	flag.Parse()
	cfg.Seed = *seed

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	worldCfg, registry, err := cfg.LoadWorld()
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	rng, usedSeed := cfg.NewRand()
	logger.Info("starting", zap.Int64("seed", usedSeed), zap.Int("size_x", worldCfg.SizeX), zap.Int("size_z", worldCfg.SizeZ))

	// Only export traces when an API key is configured
	if telemetry.HoneycombFromEnv() {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			SampleRatio: cfg.TraceSample,
			Attributes: []attribute.KeyValue{
				attribute.Int64("tuskwalk.seed", usedSeed),
				attribute.Int("tuskwalk.size_x", worldCfg.SizeX),
				attribute.Int("tuskwalk.size_z", worldCfg.SizeZ),
			},
		})
		if err != nil {
			logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	if *dump {
		if err := dumpIsland(ctx, worldCfg, registry, rng, usedSeed, logger); err != nil {
			log.Fatalf("Failed to generate island: %v", err)
		}
		return
	}

	g, err := game.New(worldCfg, registry, rng, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// dumpIsland generates one session and prints its map and stats.
func dumpIsland(ctx context.Context, worldCfg world.Config, registry *gamedata.PrefabRegistry, rng world.Rand, seed int64, logger *zap.Logger) error {
	session, err := game.NewSession(ctx, worldCfg, rng, game.WithLogger(logger))
	if err != nil {
		return err
	}
	defer session.Teardown()

	marks := map[world.GridCoordinates]rune{
		session.Hunter().Coordinates():   'H',
		session.Elephant().Coordinates(): 'E',
	}
	fmt.Print(ui.RenderASCII(session.World(), registry, marks))

	stats := session.Stats()
	fmt.Printf("\nseed %d  size %dx%d  fingerprint %016x\n",
		seed, worldCfg.SizeX, worldCfg.SizeZ, session.World().Fingerprint())
	fmt.Printf("sources %d  spread %d  liquid pass-through %d  truncated walks %d  shore tiles %d\n",
		stats.Sources, stats.SpreadApplied, stats.LiquidPassThrough, stats.TruncatedWalks, stats.ShoreTiles)

	types := make([]world.CubeType, 0, len(stats.Counts))
	for t := range stats.Counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	for _, t := range types {
		fmt.Printf("%-6s %d\n", t, stats.Counts[t])
	}
	return nil
}

