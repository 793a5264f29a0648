// Package mapgen generates playable dungeon levels.
//
// Three architects carve a map in different ways:
//
//   - CellularAutomata seeds random noise and smooths it into caves
//   - DrunkardWalk carves with bounded random walks and prunes what the
//     player cannot reach
//   - Rooms places non-overlapping rectangles and joins them with L-shaped
//     corridors
//
// The Builder picks an architect, runs it, overlays a prefab, picks a theme
// and then validates the result. Every returned Level satisfies:
//
//   - the player start and the exit are floor tiles
//   - the exit is reachable from the start
//   - every spawn point is a reachable floor tile at least SpawnMinDistance
//     steps from the start, and there are at most SpawnCount of them
//
// A draw that cannot meet these rules is retried on the same random stream,
// so a given seed always produces the same level.
package mapgen
