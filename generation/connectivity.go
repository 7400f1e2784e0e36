package generation

// ReachableRooms flood fills walkable tiles from the first room's centre and
// returns how many room centres the fill reached.
func (m *DungeonMap) ReachableRooms() int {
	if len(m.rooms) == 0 {
		return 0
	}

	sx, sy := m.rooms[0].Center()
	visited := m.grid.Reachable(sx, sy)

	reached := 0
	for _, room := range m.rooms {
		cx, cy := room.Center()
		if visited[cy*m.grid.Width+cx] {
			reached++
		}
	}
	return reached
}

// Connected reports whether every room can be walked to from every other.
func (m *DungeonMap) Connected() bool {
	return m.ReachableRooms() == len(m.rooms)
}
