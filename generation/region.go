package generation

import "neon-dungeon/grid"

// Region is a rectangle of tiles covered by one partition node.
type Region struct {
	X, Y, W, H int
}

// Area returns the number of tiles in the region.
func (r Region) Area() int {
	return r.W * r.H
}

// Room is the walkable rectangle carved inside a leaf region, in tile units.
type Room struct {
	X, Y, W, H int
}

// Center returns the tile at the middle of the room, rounded down.
func (r Room) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the tile lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Rect returns the room's tiles as a grid rectangle.
func (r Room) Rect() grid.Rect {
	return grid.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
