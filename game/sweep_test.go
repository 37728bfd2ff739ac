package game

import (
	"math"
	"testing"
)

func TestBackSolve(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 20, Height: 20}
	point := Point{100, 50}

	testCases := []struct {
		name     string
		vertex   int
		expected Point
	}{
		{"TopLeft", 0, Point{100, 50}},
		{"TopRight", 1, Point{80, 50}},
		{"BottomRight", 2, Point{80, 30}},
		{"BottomLeft", 3, Point{100, 30}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := backSolve(rect, tc.vertex, point)
			if got != tc.expected {
				t.Errorf("backSolve vertex %d = %v, expected %v", tc.vertex, got, tc.expected)
			}
			// The solved position must place the vertex on the point.
			placed := Rect{X: got.X, Y: got.Y, Width: rect.Width, Height: rect.Height}
			if placed.Vertex(tc.vertex) != point {
				t.Errorf("vertex %d of solved rect = %v, expected %v", tc.vertex, placed.Vertex(tc.vertex), point)
			}
		})
	}
}

func TestSweepVertical_SecondVertexAccepted(t *testing.T) {
	// Diagonal travel whose first leading vertex crosses the edge above its
	// extent; the second vertex must be tried and accepted.
	rect := Rect{X: 675, Y: 235, Width: 20, Height: 20}
	velocity := Point{10, 10}
	target := sweepTarget{
		side:      Left,
		bound:     700,
		extentMin: 250,
		extentMax: 350,
		bounded:   true,
		vertices:  []int{1, 2},
	}

	hit, ok := sweepVertical(rect, velocity, 1, target)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.vertex != 2 {
		t.Errorf("hit vertex = %d, expected 2", hit.vertex)
	}
	if hit.point != (Point{700, 260}) {
		t.Errorf("hit point = %v, expected {700 260}", hit.point)
	}
	if hit.side != Left {
		t.Errorf("hit side = %v, expected left", hit.side)
	}
}

func TestSweepVertical_RangeMiss(t *testing.T) {
	// Swept X range never reaches the edge.
	rect := Rect{X: 600, Y: 280, Width: 20, Height: 20}
	target := sweepTarget{
		side:      Left,
		bound:     700,
		extentMin: 0,
		extentMax: 600,
		bounded:   true,
		vertices:  []int{1, 2},
	}

	if _, ok := sweepVertical(rect, Point{5, 0}, 0, target); ok {
		t.Error("expected no hit for a short sweep")
	}
}

func TestSweepHorizontal_ZeroSlopeSkipped(t *testing.T) {
	rect := Rect{X: 100, Y: 95, Width: 20, Height: 20}
	target := sweepTarget{
		side:     Top,
		bound:    100,
		vertices: []int{2, 3},
	}

	if _, ok := sweepHorizontal(rect, Point{5, 0}, 0, target); ok {
		t.Error("horizontal travel must not cross a horizontal edge")
	}
}

func TestResolveSweep_TieGoesToHorizontalEdge(t *testing.T) {
	// Both candidate edges are crossed by the same vertex at the same
	// corner point; the horizontal edge wins the tie.
	rect := Rect{X: 675, Y: 225, Width: 20, Height: 20}
	velocity := Point{10, 10}
	vertical := sweepTarget{
		side: Left, bound: 700,
		extentMin: 250, extentMax: 350, bounded: true,
		vertices: []int{1, 2},
	}
	horizontal := sweepTarget{
		side: Top, bound: 250,
		extentMin: 700, extentMax: 725, bounded: true,
		vertices: []int{2, 3},
	}

	hit, ok := resolveSweep(rect, velocity, vertical, horizontal)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Side != Top {
		t.Errorf("tie broke toward %v, expected top", hit.Side)
	}
	if hit.Point != (Point{700, 250}) {
		t.Errorf("hit point = %v, expected the corner {700 250}", hit.Point)
	}
}

func TestResolveSweep_ZeroHorizontalVelocity(t *testing.T) {
	rect := Rect{X: 100, Y: 100, Width: 20, Height: 20}
	target := sweepTarget{side: Top, bound: 150, vertices: []int{2, 3}}

	if _, ok := resolveSweep(rect, Point{0, 10}, target, target); ok {
		t.Error("vertical-only travel must report no collision")
	}
}

func TestResolveSweep_CorrectedPositionLandsVertex(t *testing.T) {
	rect := Rect{X: 675, Y: 220, Width: 20, Height: 20}
	velocity := Point{10, 10}
	vertical := sweepTarget{
		side: Left, bound: 700,
		extentMin: 250, extentMax: 350, bounded: true,
		vertices: []int{1, 2},
	}
	horizontal := sweepTarget{
		side: Top, bound: 250,
		extentMin: 700, extentMax: 725, bounded: true,
		vertices: []int{2, 3},
	}

	hit, ok := resolveSweep(rect, velocity, vertical, horizontal)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Side != Top {
		t.Fatalf("hit side = %v, expected top", hit.Side)
	}
	if math.Abs(hit.Point.X-705) > 1e-9 || math.Abs(hit.Point.Y-250) > 1e-9 {
		t.Errorf("hit point = %v, expected {705 250}", hit.Point)
	}
	// Bottom-right vertex on the hit point.
	if math.Abs(hit.Position.X-685) > 1e-9 || math.Abs(hit.Position.Y-230) > 1e-9 {
		t.Errorf("corrected position = %v, expected {685 230}", hit.Position)
	}
}
