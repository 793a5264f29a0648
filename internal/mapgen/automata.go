package mapgen

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// buildCellular grows caves from random noise
func buildCellular(cfg *Config, src rng.Source) (*Level, error) {
	m, err := dungeon.NewMap(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	seedNoise(m, src, cfg.NoiseThreshold)
	for i := 0; i < cfg.SmoothingIterations; i++ {
		m = smooth(m)
	}

	start, ok := closestFloorToCenter(m)
	if !ok {
		return nil, ungeneratable("cellular automata left no floor tiles")
	}

	exit, err := FindMostDistant(m, start, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	spawns, err := SpawnMonsters(&SpawnInput{
		Map:         m,
		Start:       start,
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
		PlayerStart: start,
		Exit:        exit,
		Architect:   ArchitectCellularAutomata,
	}, nil
}

// seedNoise draws every interior cell; the border stays wall
func seedNoise(m *dungeon.Map, src rng.Source, threshold int) {
	m.Fill(dungeon.Wall)
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if src.Range(0, 100) > threshold {
				m.Set(dungeon.Pt(x, y), dungeon.Floor)
			}
		}
	}
}

// smooth applies one automaton pass, reading only from m and writing to a
// fresh map. Border cells are copied unchanged.
func smooth(m *dungeon.Map) *dungeon.Map {
	next := m.Clone()
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			walls := countWallNeighbors(m, x, y)
			tile := dungeon.Floor
			if walls > 4 || walls == 0 {
				tile = dungeon.Wall
			}
			next.Set(dungeon.Pt(x, y), tile)
		}
	}
	return next
}

func countWallNeighbors(m *dungeon.Map, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if m.At(dungeon.Pt(x+dx, y+dy)) == dungeon.Wall {
				n++
			}
		}
	}
	return n
}

// closestFloorToCenter picks the floor tile nearest the middle of the map.
// Scanning in index order with a strict comparison keeps the first tie.
func closestFloorToCenter(m *dungeon.Map) (dungeon.Point, bool) {
	center := dungeon.Pt(m.Width/2, m.Height/2)
	best := -1
	bestDist := 0
	for idx, tile := range m.Tiles {
		if tile != dungeon.Floor {
			continue
		}
		d := m.Point(idx).DistanceSq(center)
		if best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		return dungeon.Point{}, false
	}
	return m.Point(best), true
}
