// Package levels stores the seeds and metadata needed to regenerate a level.
// Tiles are never stored.
package levels

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=levelsmock github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels Repository

// Record describes one generated level
type Record struct {
	ID string `json:"id"`

	// Seed and Architect reproduce the level. Architect is the forced
	// architect name, empty when the builder drew one.
	Seed      int64  `json:"seed"`
	Architect string `json:"architect,omitempty"`

	// Outcome of the generation, used to verify a regeneration
	Generated   string        `json:"generated"`
	Theme       string        `json:"theme"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	PlayerStart dungeon.Point `json:"player_start"`
	Exit        dungeon.Point `json:"exit"`
	SpawnCount  int           `json:"spawn_count"`
	Attempts    int           `json:"attempts"`
	Checksum    uint64        `json:"checksum"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for storing a record
type CreateInput struct {
	Record *Record
	// TTL overrides the repository default when non-zero
	TTL time.Duration
}

// CreateOutput contains the stored record with timestamps filled in
type CreateOutput struct {
	Record *Record
}

// GetInput contains parameters for retrieving a record
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved record
type GetOutput struct {
	Record *Record
}

// DeleteInput contains parameters for deleting a record
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether a record was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines storage for level records
type Repository interface {
	// Create stores a record, replacing any record with the same ID
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a record. A missing record is NotFound.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}
