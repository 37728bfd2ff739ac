// File: game/paddle.go
package game

import "github.com/veddel/gopong/utils"

// Paddle is one player's paddle. Movement direction is not stored; it is a
// transient quantity derived from input each frame.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Score  int     `json:"score"`

	speed       float64
	stageHeight float64
	startX      float64
	startY      float64
}

// NewPaddle returns a paddle at its start position for the given player
// (1 is the left paddle, 2 the right).
func NewPaddle(cfg utils.Config, player int) *Paddle {
	startX := cfg.Paddle1StartX()
	if player == 2 {
		startX = cfg.Paddle2StartX()
	}
	return &Paddle{
		X:           startX,
		Y:           cfg.PaddleStartY(),
		Width:       cfg.PaddleWidth,
		Height:      cfg.PaddleHeight,
		speed:       cfg.PaddleSpeed,
		stageHeight: cfg.StageHeight,
		startX:      startX,
		startY:      cfg.PaddleStartY(),
	}
}

// Rect returns the paddle's bounding rectangle.
func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Move shifts the paddle one frame in the given direction (-1 up, +1 down),
// clamped to the stage's vertical bounds.
func (p *Paddle) Move(direction int) {
	if direction == 0 {
		return
	}
	p.Y = utils.Clamp(p.Y+float64(direction)*p.speed, 0, p.stageHeight-p.Height)
}

// ResetPosition puts the paddle back at its start position. The score is
// left untouched.
func (p *Paddle) ResetPosition() {
	p.X = p.startX
	p.Y = p.startY
}
