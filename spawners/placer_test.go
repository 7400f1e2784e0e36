package spawners

import (
	"errors"
	"testing"

	"neon-dungeon/config"
	"neon-dungeon/generation"
	"neon-dungeon/random"
)

// fourRoomMap generates a 64x48 tile map whose fixed draws give four rooms.
func fourRoomMap(t *testing.T) *generation.DungeonMap {
	t.Helper()
	cfg := config.Default()
	cfg.WorldWidth = 640
	cfg.WorldHeight = 480

	m, err := generation.Generate(t.Context(), cfg, random.NewSequence(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Rooms()) != 4 {
		t.Fatalf("Expected 4 rooms, got %d", len(m.Rooms()))
	}
	return m
}

func TestPlaceStartIsStable(t *testing.T) {
	m := fourRoomMap(t)
	p := NewPlacer(m, random.NewSeeded(1), nil)

	first := p.PlaceStart()
	second := p.PlaceStart()
	if first != second {
		t.Errorf("Expected the same start spawn, got %+v and %+v", first, second)
	}

	x, y := m.RoomCenter(first.Room)
	if first.X != x || first.Y != y {
		t.Errorf("Expected start at room centre (%v, %v), got (%v, %v)", x, y, first.X, first.Y)
	}
	if got := len(p.Spawns()); got != 1 {
		t.Errorf("Expected 1 recorded spawn, got %d", got)
	}
}

func TestSingletonsOnePerRoom(t *testing.T) {
	m := fourRoomMap(t)
	p := NewPlacer(m, random.NewSeeded(7), nil)
	start := p.StartRoom()

	seen := map[generation.Room]bool{}
	for i := 0; i < 3; i++ {
		s, err := p.PlaceSingleton(KindGem)
		if err != nil {
			t.Fatalf("gem %d: unexpected error: %v", i, err)
		}
		if s.Room == start {
			t.Errorf("gem %d placed in the start room", i)
		}
		if seen[s.Room] {
			t.Errorf("gem %d placed in a room that already has a gem", i)
		}
		seen[s.Room] = true
		if !s.Room.Contains(int(s.X/10), int(s.Y/10)) {
			t.Errorf("gem %d at (%v, %v) is outside its room %+v", i, s.X, s.Y, s.Room)
		}
	}

	if _, err := p.PlaceSingleton(KindGem); !errors.Is(err, ErrNoRoom) {
		t.Errorf("Expected ErrNoRoom once every room has a gem, got %v", err)
	}

	// Other kinds have their own bookkeeping.
	if _, err := p.PlaceSingleton(KindHeart); err != nil {
		t.Errorf("Expected a heart to fit, got %v", err)
	}
}

func TestEnemiesCappedPerRoom(t *testing.T) {
	m := fourRoomMap(t)
	p := NewPlacer(m, random.NewSeeded(3), nil)
	start := p.StartRoom()

	for i := 0; i < 3*MaxEnemiesPerRoom; i++ {
		if _, err := p.PlaceEnemy(); err != nil {
			t.Fatalf("enemy %d: unexpected error: %v", i, err)
		}
	}
	for _, room := range m.Rooms() {
		want := MaxEnemiesPerRoom
		if room == start {
			want = 0
		}
		if got := p.EnemiesIn(room); got != want {
			t.Errorf("room %+v: Expected %d enemies, got %d", room, want, got)
		}
	}

	if _, err := p.PlaceEnemy(); !errors.Is(err, ErrNoRoom) {
		t.Errorf("Expected ErrNoRoom when every room is full, got %v", err)
	}
}

func TestPopulate(t *testing.T) {
	m := fourRoomMap(t)
	var lines []string
	p := NewPlacer(m, random.NewSeeded(11), func(s string) { lines = append(lines, s) })

	spawns, err := p.Populate(2, 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := map[Kind]int{}
	for _, s := range spawns {
		counts[s.Kind]++
	}
	want := map[Kind]int{KindPlayer: 1, KindExit: 1, KindGem: 2, KindHeart: 1, KindEnemy: 5}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("Expected %d %s spawns, got %d", n, kind, counts[kind])
		}
	}
	if spawns[0].Kind != KindPlayer {
		t.Errorf("Expected the player spawn first, got %s", spawns[0].Kind)
	}
	if len(lines) != len(spawns) {
		t.Errorf("Expected %d log lines, got %d", len(spawns), len(lines))
	}

	if _, err := NewPlacer(m, random.NewSeeded(11), nil).Populate(4, 0, 0); !errors.Is(err, ErrNoRoom) {
		t.Errorf("Expected ErrNoRoom for more gems than rooms, got %v", err)
	}
}
