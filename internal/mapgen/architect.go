package mapgen

import (
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Architect names a map carving strategy
type Architect int

// Architects. Unspecified lets the builder draw one at random.
const (
	ArchitectUnspecified Architect = iota
	ArchitectDrunkardWalk
	ArchitectRooms
	ArchitectCellularAutomata
)

// Architects lists the concrete strategies in selection-draw order
var Architects = []Architect{
	ArchitectDrunkardWalk,
	ArchitectRooms,
	ArchitectCellularAutomata,
}

// String returns the wire name of the architect
func (a Architect) String() string {
	switch a {
	case ArchitectDrunkardWalk:
		return "drunkard"
	case ArchitectRooms:
		return "rooms"
	case ArchitectCellularAutomata:
		return "cellular"
	case ArchitectUnspecified:
		return "random"
	default:
		return "unknown"
	}
}

// Valid reports whether a is one of the concrete architects
func (a Architect) Valid() bool {
	return a >= ArchitectDrunkardWalk && a <= ArchitectCellularAutomata
}

// ParseArchitect converts a wire name to an Architect. The empty string and
// "random" map to ArchitectUnspecified.
func ParseArchitect(s string) (Architect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return ArchitectUnspecified, nil
	case "drunkard", "drunkard_walk":
		return ArchitectDrunkardWalk, nil
	case "rooms":
		return ArchitectRooms, nil
	case "cellular", "cellular_automata":
		return ArchitectCellularAutomata, nil
	default:
		return ArchitectUnspecified, errors.InvalidArgumentf("unknown architect %q", s)
	}
}
