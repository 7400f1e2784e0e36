// Package grid holds the rasterized dungeon: a dense tile grid that answers
// occupancy and ray-to-wall queries in world coordinates.
package grid

import (
	"math"
	"strings"
)

// TileState is the walkability of one tile.
type TileState uint8

// Tile states
const (
	TileWall TileState = iota
	TileWalkable
)

// String renders the state the way the ASCII dump does.
func (s TileState) String() string {
	if s == TileWalkable {
		return "."
	}
	return "#"
}

// Rect is an axis-aligned block of tiles: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// TileGrid stores one state per tile, row-major.
type TileGrid struct {
	Width    int
	Height   int
	TileSize float64
	tiles    []TileState
}

// New creates a grid of the given size with every tile a wall.
func New(width, height int, tileSize float64) *TileGrid {
	return &TileGrid{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		tiles:    make([]TileState, width*height),
	}
}

// InBounds reports whether the tile index lies inside the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the state of the tile at index (x, y). Out of bounds is a wall.
func (g *TileGrid) At(x, y int) TileState {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y*g.Width+x]
}

// Set sets the tile at the given index. Out of bounds writes are dropped.
func (g *TileGrid) Set(x, y int, state TileState) {
	if g.InBounds(x, y) {
		g.tiles[y*g.Width+x] = state
	}
}

// MarkWalkable marks every in-bounds tile under r as walkable. It never
// turns a tile back into a wall, so marking order does not matter.
func (g *TileGrid) MarkWalkable(r Rect) {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.W, g.Width), min(r.Y+r.H, g.Height)
	for y := y0; y < y1; y++ {
		row := g.tiles[y*g.Width : (y+1)*g.Width]
		for x := x0; x < x1; x++ {
			row[x] = TileWalkable
		}
	}
}

// TileIndex converts a world coordinate pair to the containing tile index.
func (g *TileGrid) TileIndex(worldX, worldY float64) (x, y int, ok bool) {
	fx := math.Floor(worldX / g.TileSize)
	fy := math.Floor(worldY / g.TileSize)
	if math.IsNaN(fx) || math.IsNaN(fy) ||
		fx < 0 || fy < 0 || fx >= float64(g.Width) || fy >= float64(g.Height) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// TileAt returns the state of the tile containing the world point.
// Points outside the grid are walls.
func (g *TileGrid) TileAt(worldX, worldY float64) TileState {
	x, y, ok := g.TileIndex(worldX, worldY)
	if !ok {
		return TileWall
	}
	return g.tiles[y*g.Width+x]
}

// WalkableCount returns the number of walkable tiles.
func (g *TileGrid) WalkableCount() int {
	n := 0
	for _, t := range g.tiles {
		if t == TileWalkable {
			n++
		}
	}
	return n
}

// String dumps the grid as text, '.' for walkable and '#' for wall.
func (g *TileGrid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for _, t := range g.tiles[y*g.Width : (y+1)*g.Width] {
			b.WriteString(t.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
