// Package dungeon provides the tile grid that level generation carves into.
package dungeon

// Tile is the semantic category of one grid cell
type Tile uint8

// Tile values. Wall is the zero value so a freshly allocated map is solid rock.
const (
	Wall Tile = iota
	Floor
	Exit
)

// String returns the lower-case name of the tile
func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Enterable reports whether an actor may stand on the tile
func (t Tile) Enterable() bool {
	return t != Wall
}
