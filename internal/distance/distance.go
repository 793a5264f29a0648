// Package distance computes multi-source shortest-path distance fields over
// a tile grid.
//
// Movement is 8-directional with a uniform step cost of 1 and is blocked by
// tiles the grid reports as not enterable. Tiles that cannot be reached, or
// that are farther than the configured maximum depth, are reported as
// unreachable through an explicit flag rather than a sentinel value.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for the distance array and the queue.
package distance

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// DefaultMaxDepth is the traversal cutoff used by level generation
const DefaultMaxDepth = 1024

const unreachable = -1

// offsets8 lists neighbours N, NE, E, SE, S, SW, W, NW
var offsets8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Grid is the view of a map the distance field needs
type Grid interface {
	// Size returns width and height
	Size() (int, int)
	// Enterable reports whether the row-major index can be walked on
	Enterable(idx int) bool
}

// Input configures one distance field computation
type Input struct {
	Grid Grid
	// Sources are row-major indices. Each receives distance 0.
	Sources []int
	// MaxDepth is the largest distance still considered reachable.
	// Zero or less disables the cutoff.
	MaxDepth int
}

// Field holds the per-tile distances of one computation. It is never
// mutated after Compute returns.
type Field struct {
	width  int
	height int
	dist   []int
}

// Compute runs a breadth-first flood from every source at once
func Compute(input *Input) (*Field, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Grid == nil {
		return nil, errors.InvalidArgument("grid is required")
	}

	width, height := input.Grid.Size()
	total := width * height
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidArgumentf("grid dimensions must be positive, got %dx%d", width, height)
	}

	field := &Field{
		width:  width,
		height: height,
		dist:   make([]int, total),
	}
	for i := range field.dist {
		field.dist[i] = unreachable
	}

	queue := make([]int, 0, total)
	for _, src := range input.Sources {
		if src < 0 || src >= total {
			return nil, errors.InvalidArgumentf("source index %d is outside the %dx%d grid", src, width, height)
		}
		if field.dist[src] == 0 {
			continue
		}
		field.dist[src] = 0
		queue = append(queue, src)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		next := field.dist[u] + 1
		if input.MaxDepth > 0 && next > input.MaxDepth {
			continue
		}
		ux, uy := u%width, u/width
		for _, d := range offsets8 {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 0 || vx >= width || vy < 0 || vy >= height {
				continue
			}
			v := vx + vy*width
			if field.dist[v] != unreachable || !input.Grid.Enterable(v) {
				continue
			}
			field.dist[v] = next
			queue = append(queue, v)
		}
	}

	return field, nil
}

// Distance returns the distance to idx and whether it is reachable
func (f *Field) Distance(idx int) (int, bool) {
	if idx < 0 || idx >= len(f.dist) {
		return 0, false
	}
	d := f.dist[idx]
	if d == unreachable {
		return 0, false
	}
	return d, true
}

// Reachable reports whether idx has a finite distance
func (f *Field) Reachable(idx int) bool {
	_, ok := f.Distance(idx)
	return ok
}

// Len is the number of tiles covered by the field
func (f *Field) Len() int {
	return len(f.dist)
}

// Size returns the dimensions the field was computed over
func (f *Field) Size() (int, int) {
	return f.width, f.height
}

// ReachableCount is the number of tiles with a finite distance
func (f *Field) ReachableCount() int {
	n := 0
	for _, d := range f.dist {
		if d != unreachable {
			n++
		}
	}
	return n
}

// Farthest returns the reachable index with the greatest distance. Ties go
// to the first index in scan order. ok is false when nothing is reachable.
func (f *Field) Farthest() (idx int, dist int, ok bool) {
	idx, dist = -1, -1
	for i, d := range f.dist {
		if d > dist {
			idx, dist = i, d
		}
	}
	if idx < 0 {
		return 0, 0, false
	}
	return idx, dist, true
}
