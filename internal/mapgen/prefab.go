package mapgen

import (
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
)

// Prefab overlays a hand-authored fragment onto a generated level
type Prefab interface {
	Apply(level *Level, src rng.Source) error
}

// Vault is a fixed block stamped onto the map. Layout rows use '-' for
// floor, '#' for wall and 'M' for floor with a monster spawn.
type Vault struct {
	Name   string
	Layout []string
	// Attempts is how many random placements are tried
	Attempts int
	// The placement must cover a tile whose distance from the start lies
	// strictly between MinDistance and MaxDistance.
	MinDistance int
	MaxDistance int
	MaxDepth    int
}

// FortressLayout is a walled keep with three guards
var FortressLayout = []string{
	"------------",
	"---######---",
	"---#----#---",
	"---#-M--#---",
	"-###----###-",
	"--M------M--",
	"-###----###-",
	"---#----#---",
	"---#----#---",
	"---######---",
	"------------",
}

// Fortress returns the default vault prefab
func Fortress() *Vault {
	return &Vault{
		Name:        "fortress",
		Layout:      FortressLayout,
		Attempts:    10,
		MinDistance: 20,
		MaxDistance: 2000,
		MaxDepth:    1024,
	}
}

// Width is the vault's column count
func (v *Vault) Width() int {
	if len(v.Layout) == 0 {
		return 0
	}
	return len(v.Layout[0])
}

// Height is the vault's row count
func (v *Vault) Height() int {
	return len(v.Layout)
}

// Apply tries to place the vault away from the start and the exit. Failing
// to find a spot leaves the level untouched and is not an error.
func (v *Vault) Apply(level *Level, src rng.Source) error {
	if level == nil || level.Map == nil {
		return errors.InvalidArgument("level with a map is required")
	}
	m := level.Map
	if v.Width() == 0 || v.Width() > m.Width || v.Height() > m.Height {
		return nil
	}

	field, err := DistanceFrom(m, level.PlayerStart, v.MaxDepth)
	if err != nil {
		return err
	}

	var placement *dungeon.Rect
	for i := 0; i < v.Attempts && placement == nil; i++ {
		r := dungeon.NewRect(
			src.Range(0, m.Width-v.Width()),
			src.Range(0, m.Height-v.Height()),
			v.Width(),
			v.Height(),
		)
		if r.Contains(level.PlayerStart) || r.Contains(level.Exit) {
			continue
		}
		for _, p := range r.Points() {
			d, ok := field.Distance(m.Index(p))
			if ok && d > v.MinDistance && d < v.MaxDistance {
				placement = &r
				break
			}
		}
	}
	if placement == nil {
		return nil
	}

	kept := level.SpawnPoints[:0]
	for _, p := range level.SpawnPoints {
		if !placement.Contains(p) {
			kept = append(kept, p)
		}
	}
	level.SpawnPoints = kept

	for dy, row := range v.Layout {
		for dx, c := range strings.TrimSpace(row) {
			p := dungeon.Pt(placement.X+dx, placement.Y+dy)
			switch c {
			case 'M':
				m.Set(p, dungeon.Floor)
				level.SpawnPoints = append(level.SpawnPoints, p)
			case '-':
				m.Set(p, dungeon.Floor)
			case '#':
				m.Set(p, dungeon.Wall)
			}
		}
	}
	return nil
}

// NoPrefab leaves levels untouched
type NoPrefab struct{}

// Apply does nothing
func (NoPrefab) Apply(*Level, rng.Source) error {
	return nil
}
