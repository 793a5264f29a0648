package mapgen

import (
	stderrors "errors"

	"github.com/KirkDiggler/rpg-dungeon/internal/distance"
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// ErrUngeneratable marks a draw that cannot produce a valid level.
// The builder retries these.
var ErrUngeneratable = stderrors.New("ungeneratable map")

func ungeneratable(format string, args ...interface{}) error {
	return errors.WrapWithCodef(ErrUngeneratable, errors.CodeFailedPrecondition, format, args...)
}

// DistanceFrom computes the distance field from a single start point
func DistanceFrom(m *dungeon.Map, start dungeon.Point, maxDepth int) (*distance.Field, error) {
	idx, ok := m.TryIndex(start)
	if !ok {
		return nil, errors.InvalidArgumentf("start %s is outside the map", start)
	}
	return distance.Compute(&distance.Input{
		Grid:     m,
		Sources:  []int{idx},
		MaxDepth: maxDepth,
	})
}

// FindMostDistant returns the reachable tile farthest from start, taking the
// first in scan order on ties
func FindMostDistant(m *dungeon.Map, start dungeon.Point, maxDepth int) (dungeon.Point, error) {
	field, err := DistanceFrom(m, start, maxDepth)
	if err != nil {
		return dungeon.Point{}, err
	}
	idx, _, ok := field.Farthest()
	if !ok {
		return dungeon.Point{}, ungeneratable("nothing reachable from %s", start)
	}
	return m.Point(idx), nil
}

// SpawnInput configures SpawnMonsters
type SpawnInput struct {
	Map         *dungeon.Map
	Start       dungeon.Point
	Source      rng.Source
	Count       int
	MinDistance int
	MaxDepth    int
}

// SpawnMonsters draws up to Count spawn points without replacement from the
// floor tiles reachable from Start at distance MinDistance or more. A small
// pool yields fewer spawns rather than an error.
func SpawnMonsters(input *SpawnInput) ([]dungeon.Point, error) {
	if input == nil || input.Map == nil || input.Source == nil {
		return nil, errors.InvalidArgument("map and source are required")
	}

	field, err := DistanceFrom(input.Map, input.Start, input.MaxDepth)
	if err != nil {
		return nil, err
	}

	var pool []dungeon.Point
	for idx, tile := range input.Map.Tiles {
		if tile != dungeon.Floor {
			continue
		}
		if d, ok := field.Distance(idx); ok && d >= input.MinDistance {
			pool = append(pool, input.Map.Point(idx))
		}
	}

	spawns := make([]dungeon.Point, 0, min(input.Count, len(pool)))
	for len(spawns) < input.Count {
		var p dungeon.Point
		var ok bool
		p, pool, ok = rng.Take(input.Source, pool)
		if !ok {
			break
		}
		spawns = append(spawns, p)
	}
	return spawns, nil
}
