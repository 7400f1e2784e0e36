package generation

import "math"

// Carve derives one room inside a leaf region. Width and height are drawn
// from [MinRoomSize, dim-2*Margin] and the origin so the room keeps at least
// Margin tiles to every side of the region. The leaf must be at least
// MinRoomSize+2*Margin on both axes; config validation guarantees this for
// every leaf Split produces.
func (g *DungeonGenerator) Carve(leaf Region) Room {
	minRoom := float64(g.cfg.MinRoomSize)
	margin := float64(g.cfg.Margin)

	w := math.Round(minRoom + g.rng.Float64()*(float64(leaf.W)-2*margin-minRoom))
	h := math.Round(minRoom + g.rng.Float64()*(float64(leaf.H)-2*margin-minRoom))
	x := math.Round(float64(leaf.X) + margin + g.rng.Float64()*(float64(leaf.W)-w-2*margin))
	y := math.Round(float64(leaf.Y) + margin + g.rng.Float64()*(float64(leaf.H)-h-2*margin))

	return Room{X: int(x), Y: int(y), W: int(w), H: int(h)}
}
