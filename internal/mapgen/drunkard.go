package mapgen

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// buildDrunkard carves with random walks until a third of the map is floor
func buildDrunkard(cfg *Config, src rng.Source) (*Level, error) {
	m, err := dungeon.NewMap(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	center := dungeon.Pt(m.Width/2, m.Height/2)
	desired := m.Width * m.Height / cfg.FloorDivisor

	stagger(m, center, src, cfg.StaggerDistance)

	walks := 0
	for m.Count(dungeon.Floor) < desired {
		if walks >= cfg.MaxWalks {
			return nil, ungeneratable("drunkard reached %d of %d floor tiles after %d walks",
				m.Count(dungeon.Floor), desired, walks)
		}
		walks++

		from := dungeon.Pt(src.Range(1, m.Width-1), src.Range(1, m.Height-1))
		stagger(m, from, src, cfg.StaggerDistance)

		if err := prune(m, center, cfg.MaxDepth, cfg.PruneDepth); err != nil {
			return nil, err
		}
	}

	exit, err := FindMostDistant(m, center, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	spawns, err := SpawnMonsters(&SpawnInput{
		Map:         m,
		Start:       center,
		Source:      src,
		Count:       cfg.SpawnCount,
		MinDistance: cfg.SpawnMinDistance,
		MaxDepth:    cfg.MaxDepth,
	})
	if err != nil {
		return nil, err
	}

	return &Level{
		Map:         m,
		SpawnPoints: spawns,
		PlayerStart: center,
		Exit:        exit,
		Architect:   ArchitectDrunkardWalk,
	}, nil
}

// stagger runs one walk and returns how many tiles it marked. The walk ends
// on the border, off the grid, or once it has taken more than maxSteps steps,
// so it marks at most maxSteps+1 tiles.
func stagger(m *dungeon.Map, from dungeon.Point, src rng.Source, maxSteps int) int {
	pos := from
	marked := 0
	steps := 0
	for {
		if !m.InBounds(pos) || m.IsBorder(pos) {
			break
		}

		m.Set(pos, dungeon.Floor)
		marked++

		switch src.Range(0, 4) {
		case 0:
			pos.X--
		case 1:
			pos.X++
		case 2:
			pos.Y--
		default:
			pos.Y++
		}

		steps++
		if steps > maxSteps {
			break
		}
	}
	return marked
}

// prune walls off every tile that is unreachable from center or farther
// than pruneDepth
func prune(m *dungeon.Map, center dungeon.Point, maxDepth, pruneDepth int) error {
	field, err := DistanceFrom(m, center, maxDepth)
	if err != nil {
		return err
	}
	for idx := range m.Tiles {
		if d, ok := field.Distance(idx); !ok || d > pruneDepth {
			m.Tiles[idx] = dungeon.Wall
		}
	}
	return nil
}
