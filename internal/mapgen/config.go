package mapgen

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

const (
	minDimension = 24
	maxDimension = 1024
)

// Config holds every generation tunable
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Cellular automata: interior cells rolling above NoiseThreshold on
	// [0,100) start as floor, then SmoothingIterations passes are applied.
	NoiseThreshold      int `yaml:"noise_threshold"`
	SmoothingIterations int `yaml:"smoothing_iterations"`

	// Drunkard's walk
	StaggerDistance int `yaml:"stagger_distance"`
	FloorDivisor    int `yaml:"floor_divisor"`
	PruneDepth      int `yaml:"prune_depth"`
	MaxWalks        int `yaml:"max_walks"`

	// Rooms and corridors. Room sides are drawn from [RoomMinSize, RoomMaxSize).
	RoomCount       int `yaml:"room_count"`
	RoomMinSize     int `yaml:"room_min_size"`
	RoomMaxSize     int `yaml:"room_max_size"`
	MaxRoomAttempts int `yaml:"max_room_attempts"`

	// Shared post-processing
	SpawnCount       int `yaml:"spawn_count"`
	SpawnMinDistance int `yaml:"spawn_min_distance"`
	MaxDepth         int `yaml:"max_depth"`
	MinExitDistance  int `yaml:"min_exit_distance"`
	MaxAttempts      int `yaml:"max_attempts"`
}

// DefaultConfig returns the standard 80x50 tuning
func DefaultConfig() *Config {
	return &Config{
		Width:               dungeon.DefaultWidth,
		Height:              dungeon.DefaultHeight,
		NoiseThreshold:      55,
		SmoothingIterations: 10,
		StaggerDistance:     400,
		FloorDivisor:        3,
		PruneDepth:          2000,
		MaxWalks:            5000,
		RoomCount:           20,
		RoomMinSize:         2,
		RoomMaxSize:         10,
		MaxRoomAttempts:     10000,
		SpawnCount:          50,
		SpawnMinDistance:    10,
		MaxDepth:            1024,
		MinExitDistance:     10,
		MaxAttempts:         10,
	}
}

// Validate checks the tunables are usable together
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("width", c.Width, minDimension, maxDimension, vb)
	errors.ValidateRange("height", c.Height, minDimension, maxDimension, vb)
	errors.ValidateRange("noise_threshold", c.NoiseThreshold, 0, 100, vb)
	errors.ValidateMin("smoothing_iterations", c.SmoothingIterations, 0, vb)
	errors.ValidateMin("stagger_distance", c.StaggerDistance, 1, vb)
	errors.ValidateMin("floor_divisor", c.FloorDivisor, 1, vb)
	errors.ValidateMin("prune_depth", c.PruneDepth, 1, vb)
	errors.ValidateMin("max_walks", c.MaxWalks, 1, vb)
	errors.ValidateMin("room_count", c.RoomCount, 1, vb)
	errors.ValidateMin("room_min_size", c.RoomMinSize, 1, vb)
	errors.ValidateMin("max_room_attempts", c.MaxRoomAttempts, 1, vb)
	errors.ValidateMin("spawn_count", c.SpawnCount, 0, vb)
	errors.ValidateMin("spawn_min_distance", c.SpawnMinDistance, 0, vb)
	errors.ValidateMin("max_depth", c.MaxDepth, 1, vb)
	errors.ValidateMin("min_exit_distance", c.MinExitDistance, 0, vb)
	errors.ValidateMin("max_attempts", c.MaxAttempts, 1, vb)

	if c.RoomMaxSize <= c.RoomMinSize {
		vb.Fieldf("room_max_size", "must be greater than room_min_size (%d)", c.RoomMinSize)
	}
	if c.RoomMaxSize >= c.Width-2 || c.RoomMaxSize >= c.Height-2 {
		vb.Field("room_max_size", "must leave room for the border inside the map")
	}

	return vb.Build()
}
