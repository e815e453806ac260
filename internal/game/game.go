package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/tuskwalk/internal/gamedata"
	"github.com/samdwyer/tuskwalk/internal/ui"
	"github.com/samdwyer/tuskwalk/internal/world"
)

// FrameRate is how many frames per second the loop steps and renders.
const FrameRate = 30

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	camera   *ui.Camera
	worldCfg world.Config
	rng      *rand.Rand
	logger   *zap.Logger
	session  *Session
	message  string
	running  bool
}

// New creates a new game instance on the terminal.
func New(worldCfg world.Config, registry *gamedata.PrefabRegistry, rng *rand.Rand, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	camera := ui.NewCamera(1)
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, registry, camera),
		camera:   camera,
		worldCfg: worldCfg,
		rng:      rng,
		logger:   logger,
		running:  true,
	}, nil
}

// Run generates the first island and executes the main game loop until
// the player quits. Input is read on its own goroutine and handed to the
// frame loop, which owns all game state.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if err := g.restart(ctx); err != nil {
		g.screen.Close()
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	group.Go(func() error {
		// Closing the screen unblocks PollEvent
		defer g.screen.Close()
		defer cancel()
		return g.loop(ctx, events)
	})

	return group.Wait()
}

// loop steps and renders at FrameRate, applying input between frames.
func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	frame := time.Second / FrameRate
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if err := g.handleEvent(ctx, ev); err != nil {
				return err
			}
		case now := <-ticker.C:
			g.session.Step(now.Sub(last))
			last = now
			g.camera.Step()
			g.render()
		}
	}
	return nil
}

// restart tears down the current session and generates a new island.
func (g *Game) restart(ctx context.Context) error {
	if g.session != nil {
		g.session.Teardown()
	}
	g.renderer.Reset()

	session, err := NewSession(ctx, g.worldCfg, g.rng,
		WithFocuser(g.camera),
		WithWorldListener(g.renderer),
		WithLogger(g.logger),
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	session.OnGameOver(func() {
		g.message = "The hunter got you. Press r to restart or q to quit."
	})
	g.session = session
	g.message = ""
	return nil
}

func (g *Game) render() {
	g.renderer.Render(ui.Frame{
		World:    g.session.World(),
		Elephant: g.session.Elephant(),
		Hunter:   g.session.Hunter(),
		Spears:   g.session.Spears(),
		Cycle:    g.session.Cycle(),
		Message:  g.message,
	})
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	if isQuitKey(ev) {
		g.running = false
		return nil
	}
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
		if g.session.State() == StateGameOver {
			return g.restart(ctx)
		}
		return nil
	}
	if axis, ok := directionForKey(ev); ok {
		g.session.MovePlayer(axis)
	}
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// directionForKey maps arrows and WASD to movement axes. Up is north.
func directionForKey(ev *tcell.EventKey) (world.Axis, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return world.North, true
	case tcell.KeyDown:
		return world.South, true
	case tcell.KeyLeft:
		return world.West, true
	case tcell.KeyRight:
		return world.East, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return world.North, true
		case 's', 'S':
			return world.South, true
		case 'a', 'A':
			return world.West, true
		case 'd', 'D':
			return world.East, true
		}
	}
	return 0, false
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Teardown()
	}
}
