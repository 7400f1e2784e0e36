package generation

import "math"

// splitRatio is the aspect ratio at or below which a region is always cut
// across its longer side.
const splitRatio = 0.75

// PartitionNode is one node of the binary space partition. A leaf holds a
// Room and no children; an internal node holds two children whose regions
// tile its own exactly and no Room. The tree is read-only once built.
type PartitionNode struct {
	Region Region
	ChildA *PartitionNode
	ChildB *PartitionNode
	Room   *Room
}

// IsLeaf reports whether the node has no children.
func (n *PartitionNode) IsLeaf() bool {
	return n.ChildA == nil && n.ChildB == nil
}

// LeafCount returns the number of leaves under n, n included.
func (n *PartitionNode) LeafCount() int {
	if n.IsLeaf() {
		return 1
	}
	return n.ChildA.LeafCount() + n.ChildB.LeafCount()
}

// VisitLeaves calls f for every leaf, child A's subtree before child B's.
func (n *PartitionNode) VisitLeaves(f func(leaf *PartitionNode)) {
	if n.IsLeaf() {
		f(n)
		return
	}
	n.ChildA.VisitLeaves(f)
	n.ChildB.VisitLeaves(f)
}

// Leaves returns every leaf in VisitLeaves order.
func (n *PartitionNode) Leaves() []*PartitionNode {
	var leaves []*PartitionNode
	n.VisitLeaves(func(leaf *PartitionNode) {
		leaves = append(leaves, leaf)
	})
	return leaves
}

// Split recursively partitions region. A region narrower than twice the
// minimum leaf size on either axis becomes a leaf and gets its room carved
// immediately, so draws interleave split, room, split, room in depth-first
// order.
func (g *DungeonGenerator) Split(region Region) *PartitionNode {
	node := &PartitionNode{Region: region}

	minLeaf := g.cfg.MinLeafSize
	if region.W < 2*minLeaf || region.H < 2*minLeaf {
		room := g.Carve(region)
		node.Room = &room
		return node
	}

	var a, b Region
	switch {
	case float64(region.W)/float64(region.H) <= splitRatio:
		a, b = g.splitHorizontally(region)
	case float64(region.H)/float64(region.W) <= splitRatio:
		a, b = g.splitVertically(region)
	case g.rng.Float64() < 0.5:
		a, b = g.splitHorizontally(region)
	default:
		a, b = g.splitVertically(region)
	}

	node.ChildA = g.Split(a)
	node.ChildB = g.Split(b)
	return node
}

// splitHorizontally cuts along a row, stacking the children vertically.
func (g *DungeonGenerator) splitHorizontally(r Region) (Region, Region) {
	size := g.splitOffset(r.H)
	return Region{X: r.X, Y: r.Y, W: r.W, H: size},
		Region{X: r.X, Y: r.Y + size, W: r.W, H: r.H - size}
}

// splitVertically cuts along a column, placing the children side by side.
func (g *DungeonGenerator) splitVertically(r Region) (Region, Region) {
	size := g.splitOffset(r.W)
	return Region{X: r.X, Y: r.Y, W: size, H: r.H},
		Region{X: r.X + size, Y: r.Y, W: r.W - size, H: r.H}
}

// splitOffset draws a cut position in [minLeaf, dim-minLeaf].
func (g *DungeonGenerator) splitOffset(dim int) int {
	minLeaf := g.cfg.MinLeafSize
	return minLeaf + int(math.Round(g.rng.Float64()*float64(dim-2*minLeaf)))
}
