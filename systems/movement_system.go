package systems

import (
	"math"

	"neon-dungeon/grid"
)

// Direction constants for movement
const (
	DirNone = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// TileQuery is the part of a dungeon map movement reads.
type TileQuery interface {
	TileAt(worldX, worldY float64) grid.TileState
}

// MovementSystem moves a round body through walkable space
type MovementSystem struct {
	Radius float64
	Speed  float64
}

// NewMovementSystem creates a movement system for a body of the given radius
// moving speed world units per step
func NewMovementSystem(radius, speed float64) *MovementSystem {
	return &MovementSystem{Radius: radius, Speed: speed}
}

// CanOccupy reports whether the body fits at (x, y): the four points at
// Radius left, right, above and below it must all be walkable.
func (s *MovementSystem) CanOccupy(q TileQuery, x, y float64) bool {
	r := s.Radius
	return q.TileAt(x-r, y) == grid.TileWalkable &&
		q.TileAt(x+r, y) == grid.TileWalkable &&
		q.TileAt(x, y-r) == grid.TileWalkable &&
		q.TileAt(x, y+r) == grid.TileWalkable
}

// Move steps pos one Speed along the combined directions in dirs. Each axis is checked on its own
// so a blocked diagonal still slides along the wall.
func (s *MovementSystem) Move(q TileQuery, pos Point, dirs ...int) Point {
	dx, dy := 0.0, 0.0
	for _, dir := range dirs {
		ddx, ddy := DeltaFromDirection(dir)
		dx += ddx
		dy += ddy
	}
	dx, dy = math.Max(-1, math.Min(dx, 1)), math.Max(-1, math.Min(dy, 1))

	if dx != 0 && s.CanOccupy(q, pos.X+dx*s.Speed, pos.Y) {
		pos.X += dx * s.Speed
	}
	if dy != 0 && s.CanOccupy(q, pos.X, pos.Y+dy*s.Speed) {
		pos.Y += dy * s.Speed
	}
	return pos
}

// DeltaFromDirection converts a direction to a unit step
func DeltaFromDirection(dir int) (float64, float64) {
	switch dir {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}
