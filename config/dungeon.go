package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
)

// Generation defaults, in the units noted on each field of DungeonConfig.
const (
	DefaultWorldWidth        = 2560
	DefaultWorldHeight       = 1920
	DefaultTileSize          = 10
	DefaultMinLeafSize       = 16
	DefaultMinRoomSize       = 10
	DefaultMargin            = 1
	DefaultCorridorHalfWidth = 2
	DefaultMaxSearchDistance = 1000
)

var (
	// ErrInvalidConfig is returned when a generation option is out of range.
	ErrInvalidConfig = errors.New("invalid dungeon config")
	// ErrWorldTooSmall is returned when the tile grid cannot hold a single room.
	ErrWorldTooSmall = errors.New("world too small for one room")
)

// DungeonConfig holds every option recognised by dungeon generation.
type DungeonConfig struct {
	// World size in world units. The grid is ceil(size/TileSize) tiles.
	WorldWidth  float64 `env:"DUNGEON_WORLD_WIDTH" envDefault:"2560"`
	WorldHeight float64 `env:"DUNGEON_WORLD_HEIGHT" envDefault:"1920"`

	// World units per tile.
	TileSize float64 `env:"DUNGEON_TILE_SIZE" envDefault:"10"`

	// Tile units.
	MinLeafSize       int `env:"DUNGEON_MIN_LEAF_SIZE" envDefault:"16"`
	MinRoomSize       int `env:"DUNGEON_MIN_ROOM_SIZE" envDefault:"10"`
	Margin            int `env:"DUNGEON_MARGIN" envDefault:"1"`
	CorridorHalfWidth int `env:"DUNGEON_CORRIDOR_HALF_WIDTH" envDefault:"2"`

	// Ray cap in world units.
	MaxSearchDistance float64 `env:"DUNGEON_MAX_SEARCH_DISTANCE" envDefault:"1000"`
}

// Default returns the configuration the game ships with.
func Default() DungeonConfig {
	return DungeonConfig{
		WorldWidth:        DefaultWorldWidth,
		WorldHeight:       DefaultWorldHeight,
		TileSize:          DefaultTileSize,
		MinLeafSize:       DefaultMinLeafSize,
		MinRoomSize:       DefaultMinRoomSize,
		Margin:            DefaultMargin,
		CorridorHalfWidth: DefaultCorridorHalfWidth,
		MaxSearchDistance: DefaultMaxSearchDistance,
	}
}

// FromEnv loads a DungeonConfig from DUNGEON_* environment variables, falling
// back to the defaults for anything unset. The result is validated.
func FromEnv() (DungeonConfig, error) {
	var cfg DungeonConfig
	if err := ParseEnv(&cfg); err != nil {
		return DungeonConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DungeonConfig{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GridSize returns the tile grid dimensions for the configured world.
func (c DungeonConfig) GridSize() (width, height int) {
	return int(math.Ceil(c.WorldWidth / c.TileSize)), int(math.Ceil(c.WorldHeight / c.TileSize))
}

// Validate checks the options against each other. A leaf narrower than
// MinRoomSize+2*Margin would carve a zero or negative sized room, so that
// relation is rejected here rather than left to the carver.
func (c DungeonConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"world width", c.WorldWidth},
		{"world height", c.WorldHeight},
		{"tile size", c.TileSize},
		{"max search distance", c.MaxSearchDistance},
	}
	for _, p := range positive {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) || p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.MinRoomSize < 1 {
		return fmt.Errorf("%w: min room size must be at least 1, got %d", ErrInvalidConfig, c.MinRoomSize)
	}
	if c.Margin < 1 {
		return fmt.Errorf("%w: margin must be at least 1, got %d", ErrInvalidConfig, c.Margin)
	}
	if c.CorridorHalfWidth < 0 {
		return fmt.Errorf("%w: corridor half-width must not be negative, got %d", ErrInvalidConfig, c.CorridorHalfWidth)
	}

	minLeaf := c.MinRoomSize + 2*c.Margin
	if c.MinLeafSize < minLeaf {
		return fmt.Errorf("%w: min leaf size %d is below min room size + 2*margin (%d)",
			ErrInvalidConfig, c.MinLeafSize, minLeaf)
	}

	gw, gh := c.GridSize()
	if gw < minLeaf || gh < minLeaf {
		return fmt.Errorf("%w: grid is %dx%d tiles, need at least %dx%d",
			ErrWorldTooSmall, gw, gh, minLeaf, minLeaf)
	}
	return nil
}
