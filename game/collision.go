package game

// Hit describes a resolved collision: the contact point, the struck side,
// and the corrected ball top-left position that places the triggering
// vertex exactly on the contact point.
type Hit struct {
	Point    Point
	Side     Side
	Position Point
}

// HitPaddle runs the swept test between the ball's frame of travel and the
// given paddle. Only the two paddle edges facing the incoming ball can be
// struck, so the candidate edges are selected from the velocity signs. A
// ball with no horizontal velocity reports no collision.
func (b *Ball) HitPaddle(p *Paddle) (Hit, bool) {
	if b.Vx == 0 {
		return Hit{}, false
	}

	ball := b.Rect()
	pad := p.Rect()
	velocity := Point{b.Vx, b.Vy}

	var vertical sweepTarget
	if b.Vx >= 0 {
		if ball.Bound(Left) > pad.Bound(Right) {
			return Hit{}, false
		}
		vertical = sweepTarget{
			side:      Left,
			bound:     pad.Bound(Left),
			extentMin: pad.Bound(Top),
			extentMax: pad.Bound(Bottom),
			bounded:   true,
			vertices:  []int{1, 2},
		}
	} else {
		if ball.Bound(Right) < pad.Bound(Left) {
			return Hit{}, false
		}
		vertical = sweepTarget{
			side:      Right,
			bound:     pad.Bound(Right),
			extentMin: pad.Bound(Top),
			extentMax: pad.Bound(Bottom),
			bounded:   true,
			vertices:  []int{0, 3},
		}
	}

	var horizontal sweepTarget
	if b.Vy >= 0 {
		if ball.Bound(Top) > pad.Bound(Bottom) {
			return Hit{}, false
		}
		horizontal = sweepTarget{
			side:      Top,
			bound:     pad.Bound(Top),
			extentMin: pad.Bound(Left),
			extentMax: pad.Bound(Right),
			bounded:   true,
			vertices:  []int{2, 3},
		}
	} else {
		if ball.Bound(Bottom) < pad.Bound(Top) {
			return Hit{}, false
		}
		horizontal = sweepTarget{
			side:      Bottom,
			bound:     pad.Bound(Bottom),
			extentMin: pad.Bound(Left),
			extentMax: pad.Bound(Right),
			bounded:   true,
			vertices:  []int{0, 1},
		}
	}

	return resolveSweep(ball, velocity, vertical, horizontal)
}

// HitWall runs the swept test between the ball and the stage boundaries.
// Walls are unbounded lines, so only the single leading vertex (the corner
// facing the direction of travel) is tested against the two walls the ball
// moves toward. The reported Side names the struck wall.
func (b *Ball) HitWall(stageWidth, stageHeight float64) (Hit, bool) {
	if b.Vx == 0 {
		return Hit{}, false
	}

	ball := b.Rect()
	velocity := Point{b.Vx, b.Vy}

	vertical := sweepTarget{side: Left, bound: 0}
	if b.Vx >= 0 {
		vertical = sweepTarget{side: Right, bound: stageWidth}
	}
	horizontal := sweepTarget{side: Top, bound: 0}
	if b.Vy >= 0 {
		horizontal = sweepTarget{side: Bottom, bound: stageHeight}
	}

	leading := 0
	switch {
	case b.Vx >= 0 && b.Vy >= 0:
		leading = 2
	case b.Vx < 0 && b.Vy >= 0:
		leading = 3
	case b.Vx >= 0 && b.Vy < 0:
		leading = 1
	}
	vertical.vertices = []int{leading}
	horizontal.vertices = []int{leading}

	return resolveSweep(ball, velocity, vertical, horizontal)
}
