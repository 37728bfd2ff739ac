package game

// sweepTarget describes one static edge a moving rectangle is tested
// against: a fixed coordinate on one axis, an optional extent on the other
// axis, and the ordered rectangle vertices whose travel lines are tested.
type sweepTarget struct {
	side      Side
	bound     float64
	extentMin float64
	extentMax float64
	bounded   bool
	vertices  []int
}

// sweepHit is one candidate intersection: where the travel line of a
// specific vertex crosses the target edge.
type sweepHit struct {
	point  Point
	side   Side
	vertex int
}

// sweepVertical projects each candidate vertex along the travel line to the
// target's vertical edge (fixed X). A vertex whose swept X range does not
// reach the edge ends the search; a vertex whose crossing falls outside the
// edge's extent is skipped. The first accepted vertex wins.
func sweepVertical(rect Rect, velocity Point, slope float64, target sweepTarget) (sweepHit, bool) {
	for _, v := range target.vertices {
		pos := rect.Vertex(v)
		next := Point{pos.X + velocity.X, pos.Y + velocity.Y}

		minX, maxX := pos.X, next.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		if target.bound < minX || target.bound > maxX {
			break
		}

		intercept := pos.Y - pos.X*slope
		y := target.bound*slope + intercept
		if target.bounded && (y < target.extentMin || y > target.extentMax) {
			continue
		}
		return sweepHit{point: Point{target.bound, y}, side: target.side, vertex: v}, true
	}
	return sweepHit{}, false
}

// sweepHorizontal is the symmetric test against the target's horizontal
// edge (fixed Y). A zero slope cannot cross a horizontal line transversally,
// so it reports no hit.
func sweepHorizontal(rect Rect, velocity Point, slope float64, target sweepTarget) (sweepHit, bool) {
	if slope == 0 {
		return sweepHit{}, false
	}
	for _, v := range target.vertices {
		pos := rect.Vertex(v)
		next := Point{pos.X + velocity.X, pos.Y + velocity.Y}

		minY, maxY := pos.Y, next.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		if target.bound < minY || target.bound > maxY {
			break
		}

		intercept := pos.Y - pos.X*slope
		x := (target.bound - intercept) / slope
		if target.bounded && (x < target.extentMin || x > target.extentMax) {
			continue
		}
		return sweepHit{point: Point{x, target.bound}, side: target.side, vertex: v}, true
	}
	return sweepHit{}, false
}

// resolveSweep runs both edge tests and keeps the candidate whose hit point
// lies strictly nearer to its source vertex (ties go to the horizontal
// edge). The returned Hit carries the rectangle's corrected top-left
// position, back-solved so the triggering vertex lands on the hit point.
func resolveSweep(rect Rect, velocity Point, vertical, horizontal sweepTarget) (Hit, bool) {
	if velocity.X == 0 {
		return Hit{}, false
	}
	slope := velocity.Y / velocity.X

	xHit, xOK := sweepVertical(rect, velocity, slope, vertical)
	yHit, yOK := sweepHorizontal(rect, velocity, slope, horizontal)

	var chosen sweepHit
	switch {
	case xOK && yOK:
		if Distance(rect.Vertex(xHit.vertex), xHit.point) < Distance(rect.Vertex(yHit.vertex), yHit.point) {
			chosen = xHit
		} else {
			chosen = yHit
		}
	case xOK:
		chosen = xHit
	case yOK:
		chosen = yHit
	default:
		return Hit{}, false
	}

	return Hit{
		Point:    chosen.point,
		Side:     chosen.side,
		Position: backSolve(rect, chosen.vertex, chosen.point),
	}, true
}

// backSolve returns the top-left position that places the given vertex of a
// rectangle of rect's size exactly on the hit point.
func backSolve(rect Rect, vertex int, point Point) Point {
	placed := Rect{X: point.X, Y: point.Y, Width: rect.Width, Height: rect.Height}
	offset := placed.Vertex(vertex)
	return Point{
		X: point.X - (offset.X - point.X),
		Y: point.Y - (offset.Y - point.Y),
	}
}
