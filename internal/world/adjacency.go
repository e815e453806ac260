package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// AreValidCoordinates returns true if coords fall inside the grid.
func (w *World) AreValidCoordinates(coords GridCoordinates) bool {
	return coords.X >= 0 && coords.X < w.cfg.SizeX &&
		coords.Z >= 0 && coords.Z < w.cfg.SizeZ
}

// At returns the cube at coords.
func (w *World) At(coords GridCoordinates) (*Cube, bool) {
	if !w.AreValidCoordinates(coords) || len(w.cells) == 0 {
		return nil, false
	}
	return &w.cells[w.index(coords.X, coords.Z)], true
}

// Cubes calls fn for every cube in x-major order until fn returns false.
func (w *World) Cubes(fn func(c *Cube) bool) {
	for i := range w.cells {
		if !fn(&w.cells[i]) {
			return
		}
	}
}

// CountType returns how many cubes currently have type t.
func (w *World) CountType(t CubeType) int {
	count := 0
	for i := range w.cells {
		if w.cells[i].cubeType == t {
			count++
		}
	}
	return count
}

// Adjacent returns the nearest qualifying cube along axis, starting distance
// steps away and backing off one step at a time down to 1.
// A distance below 1 never matches, so the source cube is never returned.
func (w *World) Adjacent(c *Cube, axis Axis, requireUnoccupied bool, distance int) (*Cube, bool) {
	if c == nil {
		return nil, false
	}
	for d := distance; d >= 1; d-- {
		target, ok := w.At(c.coordinates.Offset(axis, d))
		if !ok {
			continue
		}
		if requireUnoccupied && target.IsOccupied() {
			continue
		}
		return target, true
	}
	return nil, false
}

// AdjacentNorth returns the nearest qualifying cube to the north.
func (w *World) AdjacentNorth(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, North, requireUnoccupied, distance)
}

// AdjacentSouth returns the nearest qualifying cube to the south.
func (w *World) AdjacentSouth(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, South, requireUnoccupied, distance)
}

// AdjacentEast returns the nearest qualifying cube to the east.
func (w *World) AdjacentEast(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, East, requireUnoccupied, distance)
}

// AdjacentWest returns the nearest qualifying cube to the west.
func (w *World) AdjacentWest(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, West, requireUnoccupied, distance)
}

// AdjacentNorthEast returns the nearest qualifying cube to the north east.
func (w *World) AdjacentNorthEast(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, NorthEast, requireUnoccupied, distance)
}

// AdjacentNorthWest returns the nearest qualifying cube to the north west.
func (w *World) AdjacentNorthWest(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, NorthWest, requireUnoccupied, distance)
}

// AdjacentSouthEast returns the nearest qualifying cube to the south east.
func (w *World) AdjacentSouthEast(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, SouthEast, requireUnoccupied, distance)
}

// AdjacentSouthWest returns the nearest qualifying cube to the south west.
func (w *World) AdjacentSouthWest(c *Cube, requireUnoccupied bool, distance int) (*Cube, bool) {
	return w.Adjacent(c, SouthWest, requireUnoccupied, distance)
}

// RandomAdjacent returns a random cardinal neighbor of c. It starts from a
// random direction and rotates through the other three before giving up.
func (w *World) RandomAdjacent(c *Cube, requireUnoccupied bool) (*Cube, bool) {
	if c == nil {
		return nil, false
	}
	option := w.rng.Intn(len(Cardinals))
	for tries := 0; tries < len(Cardinals); tries++ {
		axis := Cardinals[(option+tries)%len(Cardinals)]
		target, ok := w.At(c.coordinates.Offset(axis, 1))
		if ok && (!requireUnoccupied || target.IsUnoccupied()) {
			return target, true
		}
	}
	return nil, false
}

// RandomCube returns a uniformly random cube.
func (w *World) RandomCube() (*Cube, bool) {
	if len(w.cells) == 0 {
		return nil, false
	}
	return &w.cells[w.rng.Intn(len(w.cells))], true
}

// RandomCubeOfType returns a uniformly random cube of type t.
func (w *World) RandomCubeOfType(t CubeType, requireUnoccupied bool) (*Cube, bool) {
	candidates := make([]*Cube, 0, len(w.cells))
	for i := range w.cells {
		c := &w.cells[i]
		if c.cubeType != t {
			continue
		}
		if requireUnoccupied && c.IsOccupied() {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return nil, false
	}
	return candidates[w.rng.Intn(len(candidates))], true
}

// Fingerprint hashes cube types and occupant prefabs in grid order.
// Worlds generated from the same seed and config share a fingerprint.
func (w *World) Fingerprint() uint64 {
	h := xxhash.New()
	var header [16]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(w.cfg.SizeX))
	binary.LittleEndian.PutUint64(header[8:16], uint64(w.cfg.SizeZ))
	_, _ = h.Write(header[:])

	for i := range w.cells {
		c := &w.cells[i]
		_, _ = h.Write([]byte{byte(c.cubeType)})
		if c.occupant != nil {
			_, _ = h.WriteString(c.occupant.Prefab)
		}
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
