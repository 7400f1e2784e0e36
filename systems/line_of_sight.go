package systems

import "math"

// LineOfSight reports whether (toX, toY) can be seen from (fromX, fromY):
// the target must lie within maxRange and no wall may cut the straight line
// between them. Coincident points are always visible.
func LineOfSight(q WallQuery, fromX, fromY, toX, toY, maxRange float64) bool {
	dx, dy := toX-fromX, toY-fromY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return true
	}
	if dist > maxRange || math.IsNaN(dist) {
		return false
	}
	return q.WallDistance(fromX, fromY, dx/dist, dy/dist) >= dist
}
