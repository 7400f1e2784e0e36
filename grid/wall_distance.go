package grid

import "math"

// DirectionEpsilon replaces a zero direction component before division.
const DirectionEpsilon = 1e-5

// marchStepsPerTile is how many coarse samples the march takes per tile.
const marchStepsPerTile = 10

// WallDistance returns the distance in world units from (x, y) along
// (dirX, dirY) to the boundary of the first wall tile the ray enters.
//
// The ray is marched in steps of TileSize/10 until a sample lands in a wall
// tile (tiles outside the grid count as walls), then the exact entry point is
// found by intersecting the ray with the four edges of that tile. The result
// is always in [0, maxDistance]; maxDistance means nothing was hit. A point
// that already sits inside a wall reports 0.
func (g *TileGrid) WallDistance(x, y, dirX, dirY, maxDistance float64) float64 {
	if math.IsNaN(maxDistance) || maxDistance <= 0 {
		return 0
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0
	}
	if !finite(dirX) {
		dirX = 0
	}
	if !finite(dirY) {
		dirY = 0
	}

	length := math.Hypot(dirX, dirY)
	if length == 0 {
		if g.TileAt(x, y) != TileWalkable {
			return 0
		}
		return maxDistance
	}
	dirX /= length
	dirY /= length
	if dirX == 0 {
		dirX = DirectionEpsilon
	}
	if dirY == 0 {
		dirY = DirectionEpsilon
	}

	ts := g.TileSize
	step := ts / marchStepsPerTile

	var tileX, tileY, hitOffset float64
	hit := false
	for i := 0; ; i++ {
		offset := float64(i) * step
		if offset >= maxDistance {
			break
		}
		fx := math.Floor((x + dirX*offset) / ts)
		fy := math.Floor((y + dirY*offset) / ts)
		if g.stateAt(fx, fy) != TileWalkable {
			tileX, tileY = fx*ts, fy*ts
			hitOffset = offset
			hit = true
			break
		}
	}
	if !hit {
		return maxDistance
	}

	best := math.Inf(1)
	accept := func(t, at, lo, hi float64) {
		if at >= lo && at <= hi && t < best {
			best = t
		}
	}

	// Top and bottom edges, checked against the x span.
	for _, edgeY := range [2]float64{tileY, tileY + ts} {
		t := (edgeY - y) / dirY
		accept(t, x+dirX*t, tileX, tileX+ts)
	}
	// Left and right edges, checked against the y span.
	for _, edgeX := range [2]float64{tileX, tileX + ts} {
		t := (edgeX - x) / dirX
		accept(t, y+dirY*t, tileY, tileY+ts)
	}

	// Rounding at a tile corner can reject every edge; the march offset is
	// within one step of the true boundary.
	if math.IsInf(best, 1) {
		best = hitOffset
	}
	return math.Min(math.Max(best, 0), maxDistance)
}

// stateAt looks up a tile by floored float index so rays far outside the grid
// never overflow an int conversion.
func (g *TileGrid) stateAt(fx, fy float64) TileState {
	if fx < 0 || fy < 0 || fx >= float64(g.Width) || fy >= float64(g.Height) {
		return TileWall
	}
	return g.tiles[int(fy)*g.Width+int(fx)]
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
