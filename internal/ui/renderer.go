package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tuskwalk/internal/combat"
	"github.com/samdwyer/tuskwalk/internal/daynight"
	"github.com/samdwyer/tuskwalk/internal/entity"
	"github.com/samdwyer/tuskwalk/internal/gamedata"
	"github.com/samdwyer/tuskwalk/internal/world"
)

// hudHeight is the number of rows reserved under the map.
const hudHeight = 2

// nightFloor keeps the darkest night readable.
const nightFloor = 0.35

// Frame is everything needed to draw one frame.
type Frame struct {
	World    *world.World
	Elephant *entity.Elephant
	Hunter   *entity.Hunter
	Spears   []*combat.Spear
	Cycle    *daynight.Cycle
	Message  string
}

// sprite is the cached look of one cube and its occupant.
type sprite struct {
	glyph rune
	color tcell.Color
}

// Renderer handles drawing the game to the screen.
// It also implements world.Listener: grid mutations drop cached sprites.
type Renderer struct {
	screen   *Screen
	registry *gamedata.PrefabRegistry
	camera   *Camera
	sprites  map[world.GridCoordinates]sprite
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, registry *gamedata.PrefabRegistry, camera *Camera) *Renderer {
	return &Renderer{
		screen:   screen,
		registry: registry,
		camera:   camera,
		sprites:  make(map[world.GridCoordinates]sprite),
	}
}

// CubeReplaced drops the cached sprite for c.
func (r *Renderer) CubeReplaced(c *world.Cube, _ world.CubeType) {
	delete(r.sprites, c.Coordinates())
}

// OccupantChanged drops the cached sprite for c.
func (r *Renderer) OccupantChanged(c *world.Cube, _ *world.Occupant) {
	delete(r.sprites, c.Coordinates())
}

// Reset forgets every cached sprite, for a freshly generated world.
func (r *Renderer) Reset() {
	r.sprites = make(map[world.GridCoordinates]sprite)
}

// Render draws the map, agents, spears and HUD to the screen.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	if f.World == nil {
		r.screen.Show()
		return
	}

	width, height := r.screen.Size()
	view := r.camera.Viewport(width, max(0, height-hudHeight), f.World.SizeX(), f.World.SizeZ())

	intensity := 1.0
	if f.Cycle != nil {
		intensity = f.Cycle.SunIntensity()
	}
	shade := func(c tcell.Color) tcell.Style {
		return tcell.StyleDefault.Foreground(gamedata.Shade(c, intensity, nightFloor))
	}

	// Draw cubes and occupants
	for row := 0; row < view.Height; row++ {
		for col := 0; col < view.Width; col++ {
			c, ok := f.World.At(view.ToGrid(col, row))
			if !ok {
				continue
			}
			s := r.spriteFor(c)
			r.screen.SetContent(col, row, s.glyph, shade(s.color))
		}
	}

	// Draw spears, then agents on top
	for _, sp := range f.Spears {
		if sp.Done() {
			continue
		}
		pos := world.GridCoordinates{X: int(math.Round(sp.Position.X)), Z: int(math.Round(sp.Position.Z))}
		if col, row, ok := view.ToScreen(pos); ok {
			r.screen.SetContent(col, row, SpearGlyph(sp.Direction), tcell.StyleDefault.Foreground(tcell.ColorSilver))
		}
	}
	if f.Hunter != nil && f.Hunter.Current() != nil {
		if col, row, ok := view.ToScreen(f.Hunter.Coordinates()); ok {
			style := tcell.StyleDefault.Foreground(hunterColor(f.Hunter.State())).Bold(true)
			r.screen.SetContent(col, row, 'H', style)
		}
	}
	if f.Elephant != nil && f.Elephant.Current() != nil {
		if col, row, ok := view.ToScreen(f.Elephant.Coordinates()); ok {
			style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			r.screen.SetContent(col, row, 'E', style)
		}
	}

	r.renderHUD(f, view.Height)
	r.screen.Show()
}

func (r *Renderer) renderHUD(f Frame, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	var parts []string
	if f.Elephant != nil {
		h := f.Elephant.Health()
		parts = append(parts, fmt.Sprintf("Energy %s %d/%d", EnergyBar(10, h.Percent()), h.Current(), h.Max()))
	}
	if f.Cycle != nil {
		parts = append(parts, fmt.Sprintf("Day %d %s %s", f.Cycle.Days()+1, f.Cycle.Clock(), f.Cycle.Phase()))
	}
	if f.Hunter != nil {
		parts = append(parts, "Hunter "+f.Hunter.State().String())
	}
	r.screen.DrawText(0, y, strings.Join(parts, "  "), style)

	if f.Message != "" {
		r.screen.DrawText(0, y+1, f.Message, style.Bold(true))
	}
}

// spriteFor returns the cached sprite for c, building it on first use.
func (r *Renderer) spriteFor(c *world.Cube) sprite {
	if s, ok := r.sprites[c.Coordinates()]; ok {
		return s
	}

	s := sprite{glyph: '?', color: tcell.ColorWhite}
	if def := r.registry.ForCubeType(c.Type()); def != nil {
		s = sprite{glyph: def.GlyphRune(), color: def.TCellColor()}
	}
	if occ := c.Occupant(); occ != nil {
		if def := r.registry.GetByID(occ.Prefab); def != nil {
			s = sprite{glyph: def.GlyphRune(), color: def.TCellColor()}
		}
	}
	r.sprites[c.Coordinates()] = s
	return s
}

func hunterColor(state entity.HunterState) tcell.Color {
	switch state {
	case entity.Aggroed:
		return tcell.ColorRed
	case entity.Retreating:
		return tcell.ColorYellow
	case entity.Fleeing:
		return tcell.ColorGray
	default:
		return tcell.ColorOrange
	}
}

// EnergyBar draws a bar of width cells filled to percent.
func EnergyBar(width int, percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	filled := int(math.Round(percent * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// SpearGlyph picks a line character matching the spear's flight direction.
// North is up on screen.
func SpearGlyph(dir world.Vec3) rune {
	ax, az := math.Abs(dir.X), math.Abs(dir.Z)
	switch {
	case ax > 2*az:
		return '-'
	case az > 2*ax:
		return '|'
	case (dir.X > 0) == (dir.Z > 0):
		return '/'
	default:
		return '\\'
	}
}
