package dungeon

import (
	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Default grid dimensions
const (
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Map is a fixed-size, row-major grid of tiles. The tile slice always holds
// exactly Width*Height entries.
type Map struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewMap allocates an all-wall map
func NewMap(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidArgumentf("map dimensions must be positive, got %dx%d", width, height)
	}
	return &Map{
		Width:  width,
		Height: height,
		Tiles:  make([]Tile, width*height),
	}, nil
}

// Fill sets every cell to tile
func (m *Map) Fill(tile Tile) {
	for i := range m.Tiles {
		m.Tiles[i] = tile
	}
}

// InBounds reports whether p lies on the grid
func (m *Map) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TryIndex converts p to an index, returning false when p is off the grid
func (m *Map) TryIndex(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.Index(p), true
}

// Index converts p to an index without checking bounds
func (m *Map) Index(p Point) int {
	return p.X + p.Y*m.Width
}

// Point converts an index back to a coordinate without checking bounds
func (m *Map) Point(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// CanEnter is true when p is on the grid and not a wall
func (m *Map) CanEnter(p Point) bool {
	idx, ok := m.TryIndex(p)
	return ok && m.Tiles[idx].Enterable()
}

// At returns the tile at p, treating anything off the grid as wall
func (m *Map) At(p Point) Tile {
	idx, ok := m.TryIndex(p)
	if !ok {
		return Wall
	}
	return m.Tiles[idx]
}

// Set writes tile at p. p must be in bounds.
func (m *Map) Set(p Point, tile Tile) {
	m.Tiles[m.Index(p)] = tile
}

// TrySet writes tile at p when p is on the grid and reports whether it did
func (m *Map) TrySet(p Point, tile Tile) bool {
	idx, ok := m.TryIndex(p)
	if !ok {
		return false
	}
	m.Tiles[idx] = tile
	return true
}

// IsBorder reports whether p sits on the outermost row or column
func (m *Map) IsBorder(p Point) bool {
	return p.X == 0 || p.Y == 0 || p.X == m.Width-1 || p.Y == m.Height-1
}

// Count returns how many cells hold tile
func (m *Map) Count(tile Tile) int {
	n := 0
	for _, t := range m.Tiles {
		if t == tile {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the map
func (m *Map) Clone() *Map {
	tiles := make([]Tile, len(m.Tiles))
	copy(tiles, m.Tiles)
	return &Map{Width: m.Width, Height: m.Height, Tiles: tiles}
}

// Size returns the grid dimensions
func (m *Map) Size() (int, int) {
	return m.Width, m.Height
}

// Enterable reports whether the tile at idx can be walked on
func (m *Map) Enterable(idx int) bool {
	return idx >= 0 && idx < len(m.Tiles) && m.Tiles[idx].Enterable()
}

// Checksum hashes the dimensions and tile bytes
func (m *Map) Checksum() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8+len(m.Tiles))
	buf = append(buf,
		byte(m.Width>>8), byte(m.Width),
		byte(m.Height>>8), byte(m.Height),
	)
	for _, t := range m.Tiles {
		buf = append(buf, byte(t))
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}
