package generation

import "neon-dungeon/grid"

// Orientation is the direction a corridor segment runs in.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// Segment is one straight corridor run, widened by the half-width on both
// sides of its centre line.
type Segment struct {
	Orientation Orientation
	Tiles       grid.Rect
}

// PlanCorridors connects every pair of sibling subtrees, bottom-up, and
// returns the segments to rasterize. Each internal node joins one
// representative room from each child with an L-shaped corridor and then
// exposes one of the two, picked at random, to its parent. The pairing forms
// a spanning tree over the rooms.
func (g *DungeonGenerator) PlanCorridors(root *PartitionNode) []Segment {
	var segments []Segment
	g.connect(root, &segments)
	return segments
}

// connect returns the representative room of node's subtree.
func (g *DungeonGenerator) connect(node *PartitionNode, segments *[]Segment) Room {
	if node.IsLeaf() {
		return *node.Room
	}

	repA := g.connect(node.ChildA, segments)
	repB := g.connect(node.ChildB, segments)

	ax, ay := repA.Center()
	bx, by := repB.Center()
	*segments = append(*segments, LCorridor(ax, ay, bx, by, g.cfg.CorridorHalfWidth)...)

	if g.rng.Float64() < 0.5 {
		return repA
	}
	return repB
}

// LCorridor returns the segments joining (ax, ay) to (bx, by): a vertical
// run at column ax from ay towards by, then a horizontal run at row by from
// ax towards bx. Each run stops one tile short of its far end, which is
// already covered by the other run or by the destination room. Zero-length
// runs are omitted.
func LCorridor(ax, ay, bx, by, halfWidth int) []Segment {
	var segments []Segment
	span := 2*halfWidth + 1

	if ay != by {
		y, h := runSpan(ay, by)
		segments = append(segments, Segment{
			Orientation: Vertical,
			Tiles:       grid.Rect{X: ax - halfWidth, Y: y, W: span, H: h},
		})
	}
	if ax != bx {
		x, w := runSpan(ax, bx)
		segments = append(segments, Segment{
			Orientation: Horizontal,
			Tiles:       grid.Rect{X: x, Y: by - halfWidth, W: w, H: span},
		})
	}
	return segments
}

// runSpan returns the start and length of the tiles from 'from' towards
// 'to', including from and excluding to.
func runSpan(from, to int) (start, length int) {
	if from < to {
		return from, to - from
	}
	return to + 1, from - to
}
