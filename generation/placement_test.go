package generation

import (
	"testing"

	"neon-dungeon/random"
)

func fixedMap(t *testing.T) *DungeonMap {
	t.Helper()
	m, err := Generate(t.Context(), smallConfig(), random.NewSequence(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestRandomRoomDescends(t *testing.T) {
	m := fixedMap(t)
	rooms := m.Rooms()

	if got := m.RandomRoom(random.NewSequence(0.2)); got != rooms[0] {
		t.Errorf("Expected first room for low draws, got %+v", got)
	}
	if got := m.RandomRoom(random.NewSequence(0.7)); got != rooms[len(rooms)-1] {
		t.Errorf("Expected last room for high draws, got %+v", got)
	}
	if got := m.RandomRoom(random.NewSequence(0.2, 0.7)); got != rooms[1] {
		t.Errorf("Expected second room for A then B, got %+v", got)
	}
}

func TestRandomRoomWhere(t *testing.T) {
	m := fixedMap(t)
	start := m.Rooms()[0]

	room, ok := m.RandomRoomWhere(random.NewSeeded(1), func(r Room) bool { return r != start })
	if !ok {
		t.Fatal("Expected a room other than the start room")
	}
	if room == start {
		t.Error("filter was ignored")
	}

	if _, ok := m.RandomRoomWhere(random.NewSeeded(1), func(Room) bool { return false }); ok {
		t.Error("Expected failure when nothing is accepted")
	}
}

func TestRoomCenterAndRandomPoint(t *testing.T) {
	m := fixedMap(t)
	room := m.Rooms()[0]
	ts := m.Config().TileSize

	cx, cy := m.RoomCenter(room)
	if cx != 160 || cy != 120 {
		t.Errorf("Expected centre (160, 120), got (%v, %v)", cx, cy)
	}

	rng := random.NewSeeded(8)
	for i := 0; i < 200; i++ {
		x, y := m.RandomPointInRoom(rng, room)
		if x < float64(room.X+1)*ts || x > float64(room.X+room.W-1)*ts ||
			y < float64(room.Y+1)*ts || y > float64(room.Y+room.H-1)*ts {
			t.Fatalf("point (%v, %v) not inset inside room %+v", x, y, room)
		}
	}
}

func TestRandomPointInNarrowRoom(t *testing.T) {
	m := fixedMap(t)
	room := Room{X: 3, Y: 3, W: 2, H: 1}

	x, y := m.RandomPointInRoom(random.NewSequence(0.9), room)
	if x != 40 || y != 35 {
		t.Errorf("Expected narrow room centre (40, 35), got (%v, %v)", x, y)
	}
}
