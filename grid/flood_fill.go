package grid

// Reachable flood fills walkable tiles from (x, y) over the four cardinal
// neighbours and returns a row-major visited mask. A wall or out of bounds
// start reaches nothing.
func (g *TileGrid) Reachable(x, y int) []bool {
	visited := make([]bool, len(g.tiles))
	if g.At(x, y) != TileWalkable {
		return visited
	}

	queue := []int{y*g.Width + x}
	visited[queue[0]] = true

	dirs := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		cx, cy := curr%g.Width, curr/g.Width

		for _, dir := range dirs {
			nx, ny := cx+dir[0], cy+dir[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			idx := ny*g.Width + nx
			if !visited[idx] && g.tiles[idx] == TileWalkable {
				visited[idx] = true
				queue = append(queue, idx)
			}
		}
	}
	return visited
}
