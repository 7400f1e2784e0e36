package generation

import (
	"testing"

	"neon-dungeon/config"
	"neon-dungeon/random"
)

func TestCarveExtremes(t *testing.T) {
	cfg := smallConfig()
	leaf := Region{X: 10, Y: 20, W: 16, H: 30}

	tests := []struct {
		name string
		draw float64
		want Room
	}{
		// Smallest room pushed against the top-left margin.
		{"low", 0, Room{X: 11, Y: 21, W: 10, H: 10}},
		// Largest room filling everything but the margin.
		{"high", 0.9999999999, Room{X: 11, Y: 21, W: 14, H: 28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(t, cfg, random.NewSequence(tt.draw))
			if got := g.Carve(leaf); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestRoomsKeepMargin(t *testing.T) {
	cfg := config.Default()
	cfg.Margin = 2
	cfg.MinLeafSize = 18

	for seed := int64(1); seed <= 25; seed++ {
		m, err := Generate(t.Context(), cfg, random.NewSeeded(seed))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m.Root().VisitLeaves(func(leaf *PartitionNode) {
			r, room := leaf.Region, *leaf.Room
			if room.W < cfg.MinRoomSize || room.H < cfg.MinRoomSize {
				t.Fatalf("seed %d: room %+v below minimum size", seed, room)
			}
			if room.X-r.X < cfg.Margin || room.Y-r.Y < cfg.Margin ||
				(r.X+r.W)-(room.X+room.W) < cfg.Margin ||
				(r.Y+r.H)-(room.Y+room.H) < cfg.Margin {
				t.Fatalf("seed %d: room %+v breaks margin inside %+v", seed, room, r)
			}
		})
	}
}

func TestRoomHelpers(t *testing.T) {
	room := Room{X: 4, Y: 6, W: 5, H: 4}

	if x, y := room.Center(); x != 6 || y != 8 {
		t.Errorf("Expected center (6, 8), got (%d, %d)", x, y)
	}
	if !room.Contains(4, 6) || !room.Contains(8, 9) {
		t.Error("Expected corners to be inside the room")
	}
	if room.Contains(9, 6) || room.Contains(4, 10) {
		t.Error("Expected tiles past the far edges to be outside the room")
	}
}
