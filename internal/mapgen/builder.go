package mapgen

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// BuilderConfig holds the dependencies for the level builder
type BuilderConfig struct {
	Generation *Config
	// Prefab defaults to the fortress vault
	Prefab Prefab
	// Themes default to DefaultThemes
	Themes []Theme
}

// Validate ensures the builder can run
func (c *BuilderConfig) Validate() error {
	if c.Generation == nil {
		return errors.InvalidArgument("generation config is required")
	}
	return c.Generation.Validate()
}

// Builder runs architects and the shared post-processing
type Builder struct {
	cfg    *Config
	prefab Prefab
	themes []Theme
}

// NewBuilder creates a level builder
func NewBuilder(cfg *BuilderConfig) (*Builder, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("builder config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	generation := *cfg.Generation

	prefab := cfg.Prefab
	if prefab == nil {
		fortress := Fortress()
		fortress.MaxDepth = generation.MaxDepth
		prefab = fortress
	}

	themes := cfg.Themes
	if len(themes) == 0 {
		themes = DefaultThemes()
	}

	return &Builder{
		cfg:    &generation,
		prefab: prefab,
		themes: themes,
	}, nil
}

// Config returns a copy of the generation tunables
func (b *Builder) Config() Config {
	return *b.cfg
}

// Themes returns the themes the builder draws from
func (b *Builder) Themes() []Theme {
	return b.themes
}

// BuildInput configures one generation run
type BuildInput struct {
	Source rng.Source
	// Architect forces a strategy. ArchitectUnspecified draws one.
	Architect Architect
}

// Build generates a level, retrying ungeneratable draws on the same stream
func (b *Builder) Build(input *BuildInput) (*Level, error) {
	if input == nil || input.Source == nil {
		return nil, errors.InvalidArgument("random source is required")
	}
	if input.Architect != ArchitectUnspecified && !input.Architect.Valid() {
		return nil, errors.InvalidArgumentf("unknown architect %d", input.Architect)
	}

	var lastErr error
	for attempt := 1; attempt <= b.cfg.MaxAttempts; attempt++ {
		level, err := b.attempt(input)
		if err == nil {
			level.Attempts = attempt
			return level, nil
		}
		if !errors.Is(err, ErrUngeneratable) {
			return nil, err
		}

		slog.Warn("Level generation attempt failed",
			"attempt", attempt,
			"max_attempts", b.cfg.MaxAttempts,
			"error", err)
		lastErr = err
	}

	return nil, errors.WrapWithCodef(lastErr, errors.CodeResourceExhausted,
		"failed to generate level after %d attempts", b.cfg.MaxAttempts)
}

func (b *Builder) attempt(input *BuildInput) (*Level, error) {
	architect := input.Architect
	if architect == ArchitectUnspecified {
		architect = Architects[input.Source.Range(0, len(Architects))]
	}

	level, err := b.runArchitect(architect, input.Source)
	if err != nil {
		return nil, err
	}

	if err := b.prefab.Apply(level, input.Source); err != nil {
		return nil, errors.Wrap(err, "failed to apply prefab")
	}

	level.Theme = b.themes[input.Source.Range(0, len(b.themes))]

	if err := b.validate(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (b *Builder) runArchitect(architect Architect, src rng.Source) (*Level, error) {
	switch architect {
	case ArchitectDrunkardWalk:
		return buildDrunkard(b.cfg, src)
	case ArchitectRooms:
		return buildRooms(b.cfg, src)
	case ArchitectCellularAutomata:
		return buildCellular(b.cfg, src)
	default:
		return nil, errors.InvalidArgumentf("unknown architect %d", architect)
	}
}

// validate enforces the level invariants after the prefab has run and
// drops spawn points that no longer satisfy them
func (b *Builder) validate(level *Level) error {
	m := level.Map
	if m.At(level.PlayerStart) != dungeon.Floor {
		return ungeneratable("player start %s is not floor", level.PlayerStart)
	}
	if m.At(level.Exit) != dungeon.Floor {
		return ungeneratable("exit %s is not floor", level.Exit)
	}

	field, err := DistanceFrom(m, level.PlayerStart, b.cfg.MaxDepth)
	if err != nil {
		return err
	}

	d, ok := field.Distance(m.Index(level.Exit))
	if !ok {
		return ungeneratable("exit %s is unreachable from %s", level.Exit, level.PlayerStart)
	}
	if d < b.cfg.MinExitDistance {
		return ungeneratable("exit %s is only %d steps from the start", level.Exit, d)
	}

	spawns := make([]dungeon.Point, 0, len(level.SpawnPoints))
	for _, p := range level.SpawnPoints {
		if len(spawns) == b.cfg.SpawnCount {
			break
		}
		if m.At(p) != dungeon.Floor {
			continue
		}
		if sd, ok := field.Distance(m.Index(p)); ok && sd >= b.cfg.SpawnMinDistance {
			spawns = append(spawns, p)
		}
	}
	level.SpawnPoints = spawns
	return nil
}
