package ui

import (
	"strings"

	"github.com/samdwyer/tuskwalk/internal/gamedata"
	"github.com/samdwyer/tuskwalk/internal/world"
)

// RenderASCII draws the whole world as text, north up. marks overrides
// the glyph at specific coordinates, e.g. for agents.
func RenderASCII(w *world.World, registry *gamedata.PrefabRegistry, marks map[world.GridCoordinates]rune) string {
	r := &Renderer{registry: registry, sprites: make(map[world.GridCoordinates]sprite)}

	var b strings.Builder
	b.Grow((w.SizeX() + 1) * w.SizeZ())
	for z := w.SizeZ() - 1; z >= 0; z-- {
		for x := 0; x < w.SizeX(); x++ {
			pos := world.GridCoordinates{X: x, Z: z}
			if m, ok := marks[pos]; ok {
				b.WriteRune(m)
				continue
			}
			c, ok := w.At(pos)
			if !ok {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(r.spriteFor(c).glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
