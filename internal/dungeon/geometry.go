package dungeon

import "fmt"

// Point is an integer grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns "(x,y)"
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DistanceSq returns the squared Euclidean distance between two points
func (p Point) DistanceSq(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned rectangle given by its top-left corner and size
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRect creates a rectangle with its top-left corner at (x, y)
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// X2 is the right edge of the rectangle
func (r Rect) X2() int {
	return r.X + r.Width
}

// Y2 is the bottom edge of the rectangle
func (r Rect) Y2() int {
	return r.Y + r.Height
}

// Center returns the midpoint of the rectangle, rounded toward the top-left
func (r Rect) Center() Point {
	return Point{X: (r.X + r.X2()) / 2, Y: (r.Y + r.Y2()) / 2}
}

// Intersects reports whether two rectangles overlap. Rectangles that only
// share an edge count as intersecting.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X2() && r.X2() >= o.X && r.Y <= o.Y2() && r.Y2() >= o.Y
}

// Contains reports whether p lies inside the rectangle's cells
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X2() && p.Y >= r.Y && p.Y < r.Y2()
}

// Points returns every cell of the rectangle in row-major order
func (r Rect) Points() []Point {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	points := make([]Point, 0, r.Width*r.Height)
	for y := r.Y; y < r.Y2(); y++ {
		for x := r.X; x < r.X2(); x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}
