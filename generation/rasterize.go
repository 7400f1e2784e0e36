package generation

import "neon-dungeon/grid"

// Rasterize builds the tile grid from carved rooms and planned corridors.
// Every tile under a room or a segment becomes walkable; marking is a
// monotonic OR, so the order of rooms and segments does not matter.
func Rasterize(width, height int, tileSize float64, rooms []Room, segments []Segment) *grid.TileGrid {
	g := grid.New(width, height, tileSize)
	for _, room := range rooms {
		g.MarkWalkable(room.Rect())
	}
	for _, seg := range segments {
		g.MarkWalkable(seg.Tiles)
	}
	return g
}
