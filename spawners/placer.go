package spawners

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"neon-dungeon/generation"
)

// MaxEnemiesPerRoom caps how many enemies PlaceEnemy puts in one room.
const MaxEnemiesPerRoom = 6

// ErrNoRoom is returned when no room accepts another spawn of a kind.
var ErrNoRoom = errors.New("no room available")

// Kind identifies what a spawn point is for.
type Kind string

const (
	KindPlayer Kind = "player"
	KindExit   Kind = "exit"
	KindGem    Kind = "gem"
	KindHeart  Kind = "heart"
	KindEnemy  Kind = "enemy"
)

// Spawn is a placed world position and the room it belongs to.
type Spawn struct {
	Kind Kind
	Room generation.Room
	X, Y float64
}

// Placer hands out spawn positions on one dungeon map. It tracks which rooms
// already hold which singleton kinds and how many enemies each room has, so
// placements spread across the map. A Placer is bound to one map; a new level
// needs a new Placer.
type Placer struct {
	dungeon    *generation.DungeonMap
	rng        generation.Random
	logMessage func(string)

	start    generation.Room
	hasStart bool

	occupied map[Kind]mapset.Set[generation.Room]
	enemies  map[generation.Room]int
	spawns   []Spawn
}

// NewPlacer creates a placer for dungeon drawing from rng. logFunc receives
// a line per placement and may be nil.
func NewPlacer(dungeon *generation.DungeonMap, rng generation.Random, logFunc func(string)) *Placer {
	if logFunc == nil {
		logFunc = func(string) {}
	}
	return &Placer{
		dungeon:    dungeon,
		rng:        rng,
		logMessage: logFunc,
		occupied:   make(map[Kind]mapset.Set[generation.Room]),
		enemies:    make(map[generation.Room]int),
	}
}

// PlaceStart picks the start room and returns the player's spawn at its
// centre. Calling it again returns the same spawn.
func (p *Placer) PlaceStart() Spawn {
	if !p.hasStart {
		p.start = p.dungeon.RandomRoom(p.rng)
		p.hasStart = true

		x, y := p.dungeon.RoomCenter(p.start)
		spawn := Spawn{Kind: KindPlayer, Room: p.start, X: x, Y: y}
		p.spawns = append(p.spawns, spawn)
		p.logMessage(fmt.Sprintf("start room at tile (%d, %d)", p.start.X, p.start.Y))
		return spawn
	}
	x, y := p.dungeon.RoomCenter(p.start)
	return Spawn{Kind: KindPlayer, Room: p.start, X: x, Y: y}
}

// StartRoom returns the start room, picking it first if needed.
func (p *Placer) StartRoom() generation.Room {
	p.PlaceStart()
	return p.start
}

// PlaceSingleton places one spawn of kind in a room that is not the start
// room and does not already hold that kind.
func (p *Placer) PlaceSingleton(kind Kind) (Spawn, error) {
	start := p.StartRoom()

	taken, ok := p.occupied[kind]
	if !ok {
		taken = mapset.New[generation.Room]()
		p.occupied[kind] = taken
	}

	room, found := p.dungeon.RandomRoomWhere(p.rng, func(r generation.Room) bool {
		return r != start && !taken.Has(r)
	})
	if !found {
		return Spawn{}, fmt.Errorf("place %s: %w", kind, ErrNoRoom)
	}
	taken.Put(room)

	return p.place(kind, room), nil
}

// PlaceEnemy places an enemy outside the start room in a room holding fewer
// than MaxEnemiesPerRoom enemies.
func (p *Placer) PlaceEnemy() (Spawn, error) {
	start := p.StartRoom()

	room, found := p.dungeon.RandomRoomWhere(p.rng, func(r generation.Room) bool {
		return r != start && p.enemies[r] < MaxEnemiesPerRoom
	})
	if !found {
		return Spawn{}, fmt.Errorf("place %s: %w", KindEnemy, ErrNoRoom)
	}
	p.enemies[room]++

	return p.place(KindEnemy, room), nil
}

// Populate places the start, one exit, then the requested gems, hearts and
// enemies. Placement stops at the first kind that runs out of rooms; the
// spawns placed so far are returned with the error.
func (p *Placer) Populate(gems, hearts, enemies int) ([]Spawn, error) {
	p.PlaceStart()

	if _, err := p.PlaceSingleton(KindExit); err != nil {
		return p.Spawns(), err
	}
	for i := 0; i < gems; i++ {
		if _, err := p.PlaceSingleton(KindGem); err != nil {
			return p.Spawns(), err
		}
	}
	for i := 0; i < hearts; i++ {
		if _, err := p.PlaceSingleton(KindHeart); err != nil {
			return p.Spawns(), err
		}
	}
	for i := 0; i < enemies; i++ {
		if _, err := p.PlaceEnemy(); err != nil {
			return p.Spawns(), err
		}
	}
	return p.Spawns(), nil
}

// Spawns returns every spawn placed so far in placement order.
func (p *Placer) Spawns() []Spawn {
	out := make([]Spawn, len(p.spawns))
	copy(out, p.spawns)
	return out
}

// EnemiesIn returns how many enemies were placed in room.
func (p *Placer) EnemiesIn(room generation.Room) int {
	return p.enemies[room]
}

func (p *Placer) place(kind Kind, room generation.Room) Spawn {
	x, y := p.dungeon.RandomPointInRoom(p.rng, room)
	spawn := Spawn{Kind: kind, Room: room, X: x, Y: y}
	p.spawns = append(p.spawns, spawn)
	p.logMessage(fmt.Sprintf("%s placed at (%.0f, %.0f)", kind, x, y))
	return spawn
}
