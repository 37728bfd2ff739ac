package game

import (
	"math"
	"testing"

	"github.com/veddel/gopong/utils"
)

func testPaddle(t *testing.T, player int) *Paddle {
	t.Helper()
	return NewPaddle(utils.DefaultConfig(), player)
}

func TestBall_HitPaddle(t *testing.T) {
	cfg := utils.DefaultConfig()

	testCases := []struct {
		name         string
		ball         Ball
		player       int
		expectHit    bool
		expectedSide Side
		expectedPos  Point
	}{
		{
			// Straight-on into the right paddle's left edge: collision at
			// the edge X with Y unchanged.
			name:         "HeadOnRightward",
			ball:         Ball{X: 675, Y: 280, Vx: 10, Vy: 0, Size: 20},
			player:       2,
			expectHit:    true,
			expectedSide: Left,
			expectedPos:  Point{680, 280},
		},
		{
			// Straight-on into the left paddle's right edge. Paddle 1 sits
			// at x=75, so its right bound is 100.
			name:         "HeadOnLeftward",
			ball:         Ball{X: 105, Y: 280, Vx: -10, Vy: 0, Size: 20},
			player:       1,
			expectHit:    true,
			expectedSide: Right,
			expectedPos:  Point{100, 280},
		},
		{
			name:      "SweptRangeTooShort",
			ball:      Ball{X: 600, Y: 280, Vx: 5, Vy: 0, Size: 20},
			player:    2,
			expectHit: false,
		},
		{
			name:      "AlreadyPastPaddle",
			ball:      Ball{X: 730, Y: 280, Vx: 5, Vy: 0, Size: 20},
			player:    2,
			expectHit: false,
		},
		{
			name:      "VerticalOnlyMotion",
			ball:      Ball{X: 705, Y: 200, Vx: 0, Vy: 10, Size: 20},
			player:    2,
			expectHit: false,
		},
		{
			name:      "MissesVerticalExtent",
			ball:      Ball{X: 675, Y: 100, Vx: 10, Vy: 0, Size: 20},
			player:    2,
			expectHit: false,
		},
		{
			// Diagonal travel whose first leading vertex passes above the
			// paddle; the second leading vertex connects.
			name:         "DiagonalSecondVertex",
			ball:         Ball{X: 675, Y: 235, Vx: 10, Vy: 10, Size: 20},
			player:       2,
			expectHit:    true,
			expectedSide: Left,
			expectedPos:  Point{680, 240},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			paddle := testPaddle(t, tc.player)
			ball := tc.ball

			hit, ok := ball.HitPaddle(paddle)
			if ok != tc.expectHit {
				t.Fatalf("HitPaddle = %v, expected %v (hit: %+v)", ok, tc.expectHit, hit)
			}
			if !tc.expectHit {
				return
			}
			if hit.Side != tc.expectedSide {
				t.Errorf("side = %v, expected %v", hit.Side, tc.expectedSide)
			}
			if math.Abs(hit.Position.X-tc.expectedPos.X) > 1e-9 ||
				math.Abs(hit.Position.Y-tc.expectedPos.Y) > 1e-9 {
				t.Errorf("corrected position = %v, expected %v", hit.Position, tc.expectedPos)
			}
			_ = cfg
		})
	}
}

func TestBall_HitPaddle_SideExclusive(t *testing.T) {
	// A rightward-moving ball can only strike the faces turned toward it:
	// never the paddle's right or bottom edge while travelling right-down.
	paddle := testPaddle(t, 2)

	for y := 150.0; y <= 400; y += 10 {
		ball := Ball{X: 670, Y: y, Vx: 12, Vy: 6, Size: 20}
		hit, ok := ball.HitPaddle(paddle)
		if !ok {
			continue
		}
		if hit.Side == Right {
			t.Errorf("y=%v: rightward ball reported a right-side hit", y)
		}
		if hit.Side == Bottom {
			t.Errorf("y=%v: downward ball reported a bottom-side hit", y)
		}
	}
}

func TestBall_HitWall(t *testing.T) {
	cfg := utils.DefaultConfig()

	testCases := []struct {
		name         string
		ball         Ball
		expectHit    bool
		expectedSide Side
		expectedPos  Point
	}{
		{
			// Leading edge five units from the right wall, travelling 5 per
			// frame: must connect this frame.
			name:         "RightWall",
			ball:         Ball{X: 775, Y: 300, Vx: 5, Vy: 0, Size: 20},
			expectHit:    true,
			expectedSide: Right,
			expectedPos:  Point{780, 300},
		},
		{
			name:         "LeftWall",
			ball:         Ball{X: 3, Y: 300, Vx: -5, Vy: 2, Size: 20},
			expectHit:    true,
			expectedSide: Left,
		},
		{
			name:         "TopWall",
			ball:         Ball{X: 100, Y: 8, Vx: 5, Vy: -10, Size: 20},
			expectHit:    true,
			expectedSide: Top,
			expectedPos:  Point{104, 0},
		},
		{
			name:      "MidStageNoHit",
			ball:      Ball{X: 400, Y: 300, Vx: 5, Vy: 3, Size: 20},
			expectHit: false,
		},
		{
			name:      "VerticalOnlyMotion",
			ball:      Ball{X: 400, Y: 595, Vx: 0, Vy: 10, Size: 20},
			expectHit: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ball := tc.ball
			hit, ok := ball.HitWall(cfg.StageWidth, cfg.StageHeight)
			if ok != tc.expectHit {
				t.Fatalf("HitWall = %v, expected %v (hit: %+v)", ok, tc.expectHit, hit)
			}
			if !tc.expectHit {
				return
			}
			if hit.Side != tc.expectedSide {
				t.Errorf("side = %v, expected %v", hit.Side, tc.expectedSide)
			}
			if tc.expectedPos != (Point{}) {
				if math.Abs(hit.Position.X-tc.expectedPos.X) > 1e-9 ||
					math.Abs(hit.Position.Y-tc.expectedPos.Y) > 1e-9 {
					t.Errorf("corrected position = %v, expected %v", hit.Position, tc.expectedPos)
				}
			}
		})
	}
}

func TestBall_HitWall_BottomCorner(t *testing.T) {
	cfg := utils.DefaultConfig()

	// Travelling down-right near the bottom wall: the right wall is out of
	// sweep range, so the bottom wall reports.
	ball := Ball{X: 400, Y: 577, Vx: 5, Vy: 5, Size: 20}
	hit, ok := ball.HitWall(cfg.StageWidth, cfg.StageHeight)
	if !ok {
		t.Fatal("expected a bottom wall hit")
	}
	if hit.Side != Bottom {
		t.Errorf("side = %v, expected bottom", hit.Side)
	}
}
