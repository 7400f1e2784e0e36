package generation

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"neon-dungeon/config"
	"neon-dungeon/grid"
	"neon-dungeon/telemetry"
)

// DungeonGenerator runs the generation stages against one random source.
type DungeonGenerator struct {
	cfg config.DungeonConfig
	rng Random
}

// NewDungeonGenerator validates cfg and creates a generator drawing from rng.
func NewDungeonGenerator(cfg config.DungeonConfig, rng Random) (*DungeonGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DungeonGenerator{cfg: cfg, rng: rng}, nil
}

// DungeonMap is one generated dungeon: the partition tree, its rooms and the
// rasterized grid. It is never mutated after Generate returns; a new level
// replaces the whole map.
type DungeonMap struct {
	cfg   config.DungeonConfig
	root  *PartitionNode
	grid  *grid.TileGrid
	rooms []Room
}

// Generate builds a dungeon: partition the tile region (carving a room in
// every leaf as it goes), plan corridors over the finished tree, then
// rasterize rooms and corridors into the grid. The only failure is an
// invalid configuration.
func Generate(ctx context.Context, cfg config.DungeonConfig, rng Random) (*DungeonMap, error) {
	_, span := telemetry.Tracer("generation").Start(ctx, "dungeon.generate")
	defer span.End()

	g, err := NewDungeonGenerator(cfg, rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	width, height := cfg.GridSize()
	root := g.Split(Region{X: 0, Y: 0, W: width, H: height})

	rooms := make([]Room, 0, root.LeafCount())
	root.VisitLeaves(func(leaf *PartitionNode) {
		rooms = append(rooms, *leaf.Room)
	})

	segments := g.PlanCorridors(root)
	tiles := Rasterize(width, height, cfg.TileSize, rooms, segments)

	span.SetAttributes(
		attribute.Int("dungeon.grid_width", width),
		attribute.Int("dungeon.grid_height", height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.corridor_segments", len(segments)),
		attribute.Int("dungeon.walkable_tiles", tiles.WalkableCount()),
	)

	return &DungeonMap{
		cfg:   cfg,
		root:  root,
		grid:  tiles,
		rooms: rooms,
	}, nil
}

// Config returns the configuration the map was generated with.
func (m *DungeonMap) Config() config.DungeonConfig {
	return m.cfg
}

// Root returns the partition tree. Callers must treat it as read-only.
func (m *DungeonMap) Root() *PartitionNode {
	return m.root
}

// Grid returns the tile grid. Callers must treat it as read-only.
func (m *DungeonMap) Grid() *grid.TileGrid {
	return m.grid
}

// Rooms returns a copy of the leaf rooms in tree order.
func (m *DungeonMap) Rooms() []Room {
	rooms := make([]Room, len(m.rooms))
	copy(rooms, m.rooms)
	return rooms
}

// TileAt returns the state of the tile containing the world point; anything
// outside the map is a wall.
func (m *DungeonMap) TileAt(worldX, worldY float64) grid.TileState {
	return m.grid.TileAt(worldX, worldY)
}

// WallDistance returns the distance from the world point along the direction
// to the nearest wall boundary, capped at the configured search distance.
func (m *DungeonMap) WallDistance(worldX, worldY, dirX, dirY float64) float64 {
	return m.grid.WallDistance(worldX, worldY, dirX, dirY, m.cfg.MaxSearchDistance)
}
