package world

import "math"

// GridCoordinates addresses a single cube in the grid.
// Bounds are checked by the World, not by the coordinates themselves.
type GridCoordinates struct {
	X int
	Z int
}

// WorldPosition returns the continuous-space position of the coordinates.
func (c GridCoordinates) WorldPosition() Vec3 {
	return Vec3{X: float64(c.X), Y: 0, Z: float64(c.Z)}
}

// Offset returns the coordinates shifted distance steps along the axis.
func (c GridCoordinates) Offset(axis Axis, distance int) GridCoordinates {
	dx, dz := axis.Delta()
	return GridCoordinates{X: c.X + dx*distance, Z: c.Z + dz*distance}
}

// Axis is one of the eight grid directions.
type Axis int

const (
	North Axis = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Cardinals lists the four cardinal axes in rotation order.
var Cardinals = [4]Axis{North, South, East, West}

// Neighborhood lists all eight axes in the order neighbors are inspected.
var Neighborhood = [8]Axis{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

// Delta returns the unit x and z step for the axis.
// North is +Z and East is +X.
func (a Axis) Delta() (dx, dz int) {
	switch a {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case NorthWest:
		return -1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case NorthEast:
		return "northeast"
	case NorthWest:
		return "northwest"
	case SouthEast:
		return "southeast"
	case SouthWest:
		return "southwest"
	default:
		return "unknown"
	}
}

// Vec3 is a position or direction in world space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Length returns the euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance returns the euclidean distance between two positions.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Length()
}
