package game

import "math"

// Side identifies one side of an axis-aligned rectangle, or the stage wall
// lying in that direction.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "unknown"
}

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is the segment between two points.
type Line struct {
	A Point
	B Point
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Vertex returns corner i of the rectangle. Corners are numbered clockwise
// from the top-left:
//
//	0--1
//	|  |
//	3--2
func (r Rect) Vertex(i int) Point {
	switch i {
	case 0:
		return Point{r.X, r.Y}
	case 1:
		return Point{r.X + r.Width, r.Y}
	case 2:
		return Point{r.X + r.Width, r.Y + r.Height}
	case 3:
		return Point{r.X, r.Y + r.Height}
	}
	return Point{}
}

// Edge returns the line segment bounding the given side, following the
// clockwise vertex order.
func (r Rect) Edge(s Side) Line {
	switch s {
	case Top:
		return Line{r.Vertex(0), r.Vertex(1)}
	case Right:
		return Line{r.Vertex(1), r.Vertex(2)}
	case Bottom:
		return Line{r.Vertex(2), r.Vertex(3)}
	case Left:
		return Line{r.Vertex(3), r.Vertex(0)}
	}
	return Line{}
}

// Bound returns the extreme coordinate of the given side: a Y value for
// Top/Bottom, an X value for Left/Right.
func (r Rect) Bound(s Side) float64 {
	switch s {
	case Top:
		return r.Y
	case Right:
		return r.X + r.Width
	case Bottom:
		return r.Y + r.Height
	case Left:
		return r.X
	}
	return 0
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Overlaps reports whether the two rectangles share any interior area.
// Touching edges do not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width &&
		r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height &&
		r.Y+r.Height > o.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
