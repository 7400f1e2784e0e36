package grid

import (
	"math"
	"testing"
)

// roomGrid is a 10x5 grid with a walkable 8x3 room and a one tile wall border.
func roomGrid() *TileGrid {
	g := New(10, 5, 10)
	g.MarkWalkable(Rect{X: 1, Y: 1, W: 8, H: 3})
	return g
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestWallDistanceAxisAligned(t *testing.T) {
	g := roomGrid()
	const maxDist = 1000

	tests := []struct {
		name       string
		dirX, dirY float64
		want       float64
	}{
		{"right", 1, 0, 45},
		{"left", -1, 0, 35},
		{"up", 0, -1, 15},
		{"down", 0, 1, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.WallDistance(45, 25, tt.dirX, tt.dirY, maxDist)
			if !approx(got, tt.want, 1e-3) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWallDistanceDiagonal(t *testing.T) {
	g := roomGrid()

	// From (42, 25) heading down-right the ray crosses y=40 after 15*sqrt(2).
	want := 15 * math.Sqrt2
	got := g.WallDistance(42, 25, 1, 1, 1000)
	if !approx(got, want, g.TileSize/10) {
		t.Errorf("Expected about %v, got %v", want, got)
	}
}

func TestWallDistanceIgnoresDirectionLength(t *testing.T) {
	g := roomGrid()

	unit := g.WallDistance(45, 25, 1, 0, 1000)
	long := g.WallDistance(45, 25, 7, 0, 1000)
	if !approx(unit, long, 1e-9) {
		t.Errorf("Expected same distance for scaled direction, got %v and %v", unit, long)
	}
}

func TestWallDistanceGridEdgeIsWall(t *testing.T) {
	g := New(5, 5, 10)
	g.MarkWalkable(Rect{X: 0, Y: 0, W: 5, H: 5})

	got := g.WallDistance(25, 25, 1, 0, 1000)
	if !approx(got, 25, 1e-3) {
		t.Errorf("Expected 25 to the grid edge, got %v", got)
	}
}

func TestWallDistanceCapped(t *testing.T) {
	g := New(200, 3, 10)
	g.MarkWalkable(Rect{X: 0, Y: 0, W: 200, H: 3})

	if got := g.WallDistance(5, 15, 1, 0, 100); got != 100 {
		t.Errorf("Expected cap 100, got %v", got)
	}
}

func TestWallDistanceInsideWall(t *testing.T) {
	g := roomGrid()

	if got := g.WallDistance(5, 5, 1, 0, 1000); got != 0 {
		t.Errorf("Expected 0 from inside a wall, got %v", got)
	}
}

func TestWallDistanceZeroDirection(t *testing.T) {
	g := roomGrid()

	if got := g.WallDistance(45, 25, 0, 0, 1000); got != 1000 {
		t.Errorf("Expected the cap for a zero direction in the open, got %v", got)
	}
	if got := g.WallDistance(5, 5, 0, 0, 1000); got != 0 {
		t.Errorf("Expected 0 for a zero direction inside a wall, got %v", got)
	}
}

func TestWallDistanceBounded(t *testing.T) {
	g := roomGrid()
	const maxDist = 60

	for i := 0; i < 360; i++ {
		angle := float64(i) * math.Pi / 180
		d := g.WallDistance(45, 25, math.Cos(angle), math.Sin(angle), maxDist)
		if d < 0 || d > maxDist || math.IsNaN(d) {
			t.Fatalf("angle %d: distance %v outside [0, %v]", i, d, float64(maxDist))
		}
	}
}

func TestWallDistanceNonFiniteInput(t *testing.T) {
	g := roomGrid()

	if got := g.WallDistance(math.NaN(), 25, 1, 0, 1000); got != 0 {
		t.Errorf("Expected 0 for NaN origin, got %v", got)
	}
	got := g.WallDistance(45, 25, math.Inf(1), 0, 1000)
	if got < 0 || got > 1000 {
		t.Errorf("Expected bounded distance for infinite direction, got %v", got)
	}
}
