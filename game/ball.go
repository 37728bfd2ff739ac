package game

import (
	"math/rand"

	"github.com/veddel/gopong/utils"
)

// Ball is the moving square. Vx/Vy are per-frame displacement, not
// per-second speed.
type Ball struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Vx   float64 `json:"vx"`
	Vy   float64 `json:"vy"`
	Size float64 `json:"size"`

	startX float64
	startY float64
}

// NewBall returns a stationary ball at the serve position.
func NewBall(cfg utils.Config) *Ball {
	return &Ball{
		X:      cfg.BallStartX(),
		Y:      cfg.BallStartY(),
		Size:   cfg.BallSize,
		startX: cfg.BallStartX(),
		startY: cfg.BallStartY(),
	}
}

// Rect returns the ball's bounding rectangle.
func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Size, Height: b.Size}
}

// Move integrates the ball's position by one frame of velocity.
func (b *Ball) Move() {
	b.X += b.Vx
	b.Y += b.Vy
}

// ResetPosition puts the ball back at the serve position without touching
// its velocity.
func (b *Ball) ResetPosition() {
	b.X = b.startX
	b.Y = b.startY
}

// Serve randomizes the ball's velocity for a new round. The horizontal
// component is the base speed with a fair random sign; the vertical
// component is a base of 3 scaled by a random factor in (-0.9, 1.1).
func (b *Ball) Serve(rng *rand.Rand, speed float64) {
	b.Vx = speed
	b.Vy = 3
	if rng.Intn(2) == 1 {
		b.Vx = -b.Vx
	}
	sign := 1.0
	if rng.Intn(2) == 1 {
		sign = -1.0
	}
	b.Vy *= rng.Float64()*sign + 0.1
}
