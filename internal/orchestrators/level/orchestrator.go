// Package level implements the level orchestrator: it seeds the builder,
// records what was generated and regenerates levels on demand.
package level

//go:generate mockgen -destination=mock/mock_service.go -package=levelmock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/level Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/repositories/levels"
)

// Service defines the level operations
type Service interface {
	GenerateLevel(ctx context.Context, input *GenerateLevelInput) (*GenerateLevelOutput, error)
	GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error)
	DeleteLevel(ctx context.Context, input *DeleteLevelInput) (*DeleteLevelOutput, error)
}

// Builder generates a level from a random stream
type Builder interface {
	Build(input *mapgen.BuildInput) (*mapgen.Level, error)
}

// Config holds the dependencies for the level orchestrator
type Config struct {
	Builder     Builder
	LevelRepo   levels.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	// RecordTTL is passed to the repository. Zero uses the repository default.
	RecordTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Builder == nil {
		vb.RequiredField("Builder")
	}
	if c.LevelRepo == nil {
		vb.RequiredField("LevelRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.RecordTTL < 0 {
		vb.Field("RecordTTL", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	builder   Builder
	levelRepo levels.Repository
	idGen     idgen.Generator
	clock     clock.Clock
	recordTTL time.Duration
}

// NewOrchestrator creates a new level orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		builder:   cfg.Builder,
		levelRepo: cfg.LevelRepo,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		recordTTL: cfg.RecordTTL,
	}, nil
}

// GenerateLevel builds a new level and records how to rebuild it
func (o *orchestrator) GenerateLevel(ctx context.Context, input *GenerateLevelInput) (*GenerateLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Architect != mapgen.ArchitectUnspecified && !input.Architect.Valid() {
		return nil, errors.InvalidArgumentf("unknown architect %d", input.Architect)
	}

	seed := input.Seed
	if seed == 0 {
		seed = o.clock.Now().UnixNano()
	}

	lvl, err := o.build(seed, input.Architect)
	if err != nil {
		return nil, err
	}
	lvl.ID = o.idGen.Generate()

	record := &levels.Record{
		ID:          lvl.ID,
		Seed:        seed,
		Generated:   lvl.Architect.String(),
		Theme:       lvl.Theme.Name(),
		Width:       lvl.Map.Width,
		Height:      lvl.Map.Height,
		PlayerStart: lvl.PlayerStart,
		Exit:        lvl.Exit,
		SpawnCount:  len(lvl.SpawnPoints),
		Attempts:    lvl.Attempts,
		Checksum:    lvl.Map.Checksum(),
	}
	if input.Architect != mapgen.ArchitectUnspecified {
		record.Architect = input.Architect.String()
	}

	created, err := o.levelRepo.Create(ctx, &levels.CreateInput{
		Record: record,
		TTL:    o.recordTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record level")
	}

	slog.Info("Level generated",
		"level_id", lvl.ID,
		"seed", seed,
		"architect", lvl.Architect.String(),
		"theme", lvl.Theme.Name(),
		"spawns", len(lvl.SpawnPoints),
		"attempts", lvl.Attempts)

	return &GenerateLevelOutput{
		Level:  lvl,
		Seed:   seed,
		Record: created.Record,
	}, nil
}

// GetLevel regenerates a recorded level and checks it matches the record
func (o *orchestrator) GetLevel(ctx context.Context, input *GetLevelInput) (*GetLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LevelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	got, err := o.levelRepo.Get(ctx, &levels.GetInput{ID: input.LevelID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get level %s", input.LevelID)
	}
	record := got.Record

	architect, err := mapgen.ParseArchitect(record.Architect)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "recorded architect is invalid")
	}

	lvl, err := o.build(record.Seed, architect)
	if err != nil {
		return nil, err
	}
	lvl.ID = record.ID

	if checksum := lvl.Map.Checksum(); checksum != record.Checksum {
		slog.Error("Regenerated level does not match record",
			"level_id", record.ID,
			"seed", record.Seed,
			"expected_checksum", record.Checksum,
			"actual_checksum", checksum)
		return nil, errors.DataLoss("regenerated level does not match its record").
			WithMeta("level_id", record.ID)
	}

	return &GetLevelOutput{
		Level:  lvl,
		Record: record,
	}, nil
}

// DeleteLevel forgets a recorded level
func (o *orchestrator) DeleteLevel(ctx context.Context, input *DeleteLevelInput) (*DeleteLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LevelID == "" {
		return nil, errors.InvalidArgument("level ID is required")
	}

	out, err := o.levelRepo.Delete(ctx, &levels.DeleteInput{ID: input.LevelID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete level %s", input.LevelID)
	}

	slog.Info("Level deleted", "level_id", input.LevelID)

	return &DeleteLevelOutput{Deleted: out.Deleted}, nil
}

func (o *orchestrator) build(seed int64, architect mapgen.Architect) (*mapgen.Level, error) {
	lvl, err := o.builder.Build(&mapgen.BuildInput{
		Source:    rng.NewSeeded(seed),
		Architect: architect,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate level from seed %d", seed)
	}
	return lvl, nil
}
