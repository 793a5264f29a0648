package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
)

// MapFromRows builds a map from ASCII rows: '#' wall, '.' floor, '>' exit.
// It panics on ragged rows or unknown glyphs.
func MapFromRows(rows ...string) *dungeon.Map {
	if len(rows) == 0 {
		panic("testutils: MapFromRows needs at least one row")
	}
	width := len(rows[0])
	m, err := dungeon.NewMap(width, len(rows))
	if err != nil {
		panic(err)
	}
	for y, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("testutils: row %d has width %d, want %d", y, len(row), width))
		}
		for x, c := range row {
			var tile dungeon.Tile
			switch c {
			case '#':
				tile = dungeon.Wall
			case '.':
				tile = dungeon.Floor
			case '>':
				tile = dungeon.Exit
			default:
				panic(fmt.Sprintf("testutils: unknown glyph %q at (%d,%d)", c, x, y))
			}
			m.Set(dungeon.Pt(x, y), tile)
		}
	}
	return m
}

// ConstantSource always draws the same offset from the bottom of a range,
// clamped into the range. It is used to drive generators down
// pathological paths.
type ConstantSource struct {
	Offset int
	Calls  int
}

// Range returns lo+Offset clamped to [lo, hi)
func (c *ConstantSource) Range(lo, hi int) int {
	c.Calls++
	if hi <= lo {
		return lo
	}
	v := lo + c.Offset
	if v >= hi {
		v = hi - 1
	}
	if v < lo {
		v = lo
	}
	return v
}

// Index returns Range(0, n)
func (c *ConstantSource) Index(n int) int {
	return c.Range(0, n)
}

// ScriptedSource replays a fixed sequence of offsets, cycling when it runs
// out. Each value is clamped into the requested range.
type ScriptedSource struct {
	Values []int
	pos    int
}

// Range returns lo plus the next scripted offset, clamped to [lo, hi)
func (s *ScriptedSource) Range(lo, hi int) int {
	if hi <= lo || len(s.Values) == 0 {
		return lo
	}
	v := lo + s.Values[s.pos%len(s.Values)]
	s.pos++
	if v >= hi {
		v = hi - 1
	}
	if v < lo {
		v = lo
	}
	return v
}

// Index returns Range(0, n)
func (s *ScriptedSource) Index(n int) int {
	return s.Range(0, n)
}
