package systems

import (
	"math"

	"neon-dungeon/config"
)

// WallQuery is the part of a dungeon map the visibility systems read.
type WallQuery interface {
	WallDistance(worldX, worldY, dirX, dirY float64) float64
}

// Point is a world-space coordinate.
type Point struct {
	X, Y float64
}

// LightCone is a triangle fan of rays cast from an origin, each cut short at
// the first wall or at Radius. The first and last rim points coincide so the
// fan closes.
type LightCone struct {
	Segments int
	Radius   float64

	origin  Point
	valid   bool
	rim     []Point
	lengths []float64
}

// NewLightCone creates a cone with the given segment count and radius. Fewer
// than three segments cannot form a fan and are raised to three.
func NewLightCone(segments int, radius float64) *LightCone {
	if segments < 3 {
		segments = 3
	}
	return &LightCone{
		Segments: segments,
		Radius:   radius,
		rim:      make([]Point, segments-1),
		lengths:  make([]float64, segments-1),
	}
}

// NewDefaultLightCone creates a cone with the viewer's defaults.
func NewDefaultLightCone() *LightCone {
	return NewLightCone(config.LightConeSegments, config.LightConeRadius)
}

// Update recasts the cone from (x, y) against q. Nothing is recomputed when
// the origin has not moved since the last update; the return value reports
// whether the cone changed.
func (c *LightCone) Update(q WallQuery, x, y float64) bool {
	if c.valid && c.origin.X == x && c.origin.Y == y {
		return false
	}
	c.cast(q, x, y)
	return true
}

// Recast recomputes the cone unconditionally, e.g. after the map was replaced.
func (c *LightCone) Recast(q WallQuery, x, y float64) {
	c.cast(q, x, y)
}

func (c *LightCone) cast(q WallQuery, x, y float64) {
	c.origin = Point{X: x, Y: y}
	c.valid = true

	step := 2 * math.Pi / float64(c.Segments-2)
	for i := range c.rim {
		angle := step * float64(i)
		dirX, dirY := math.Cos(angle), math.Sin(angle)

		dist := math.Min(q.WallDistance(x, y, dirX, dirY), c.Radius)
		c.lengths[i] = dist
		c.rim[i] = Point{X: x + dirX*dist, Y: y + dirY*dist}
	}
}

// Origin returns the point the cone was last cast from.
func (c *LightCone) Origin() Point {
	return c.origin
}

// Polygon returns the rim of the fan in world coordinates, starting at angle
// zero and winding towards positive y. The slice is a copy.
func (c *LightCone) Polygon() []Point {
	out := make([]Point, len(c.rim))
	copy(out, c.rim)
	return out
}

// Lengths returns the ray length of every rim point.
func (c *LightCone) Lengths() []float64 {
	out := make([]float64, len(c.lengths))
	copy(out, c.lengths)
	return out
}
