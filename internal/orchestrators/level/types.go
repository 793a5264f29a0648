package level

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

// GenerateLevelInput contains the parameters for generating a level
type GenerateLevelInput struct {
	// Seed fixes the random stream. Zero derives one from the clock.
	Seed int64
	// Architect forces a strategy. ArchitectUnspecified lets the builder draw.
	Architect mapgen.Architect
}

// GenerateLevelOutput contains the generated level and its record
type GenerateLevelOutput struct {
	Level  *mapgen.Level
	Seed   int64
	Record *levels.Record
}

// GetLevelInput contains the parameters for retrieving a level
type GetLevelInput struct {
	LevelID string
}

// GetLevelOutput contains the regenerated level and its record
type GetLevelOutput struct {
	Level  *mapgen.Level
	Record *levels.Record
}

// DeleteLevelInput contains the parameters for deleting a level
type DeleteLevelInput struct {
	LevelID string
}

// DeleteLevelOutput reports the deletion
type DeleteLevelOutput struct {
	Deleted bool
}
