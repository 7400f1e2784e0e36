package generation

// maxPlacementAttempts bounds RandomRoomWhere so a filter nothing satisfies
// cannot spin forever.
const maxPlacementAttempts = 100

// RandomRoom picks a room by descending from the root, taking either child
// with equal probability. Rooms in shallow subtrees are therefore more likely
// than rooms in deep ones.
func (m *DungeonMap) RandomRoom(rng Random) Room {
	node := m.root
	for !node.IsLeaf() {
		if rng.Float64() < 0.5 {
			node = node.ChildA
		} else {
			node = node.ChildB
		}
	}
	return *node.Room
}

// RandomRoomWhere draws rooms with RandomRoom until accept returns true. It
// reports false if no accepted room turned up within a bounded number of
// draws.
func (m *DungeonMap) RandomRoomWhere(rng Random, accept func(Room) bool) (Room, bool) {
	for i := 0; i < maxPlacementAttempts; i++ {
		room := m.RandomRoom(rng)
		if accept(room) {
			return room, true
		}
	}
	return Room{}, false
}

// RoomCenter returns the exact world-space centre of the room.
func (m *DungeonMap) RoomCenter(room Room) (x, y float64) {
	ts := m.cfg.TileSize
	return (float64(room.X) + float64(room.W)/2) * ts,
		(float64(room.Y) + float64(room.H)/2) * ts
}

// RandomPointInRoom returns a world point inside the room, kept one tile away
// from its walls when the room is wide enough.
func (m *DungeonMap) RandomPointInRoom(rng Random, room Room) (x, y float64) {
	ts := m.cfg.TileSize
	return insetCoord(room.X, room.W, rng.Float64()) * ts,
		insetCoord(room.Y, room.H, rng.Float64()) * ts
}

func insetCoord(origin, size int, r float64) float64 {
	if size <= 2 {
		return float64(origin) + float64(size)/2
	}
	return float64(origin) + 1 + r*float64(size-2)
}
