// File: game/match.go
package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/veddel/gopong/utils"
)

// Phase identifies the round state machine's current state.
type Phase int

const (
	PhaseStartup Phase = iota // waiting for the start signal / pre-game countdown
	PhasePlay                 // active round
	PhaseRoundEnd             // post-score pause and win check
)

func (p Phase) String() string {
	switch p {
	case PhaseStartup:
		return "startup"
	case PhasePlay:
		return "play"
	case PhaseRoundEnd:
		return "round_end"
	}
	return "unknown"
}

// Input carries one frame's worth of control signals.
type Input struct {
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool
	Start  bool
}

// Event is a notable state change produced by a Step call. Events are
// transient; the caller consumes them within the frame.
type Event interface{}

// CountdownStarted fires when the start signal arms the pre-game countdown.
type CountdownStarted struct {
	Seconds int
}

// RoundStarted fires when a countdown elapses and the ball is served.
type RoundStarted struct{}

// PointScored fires when the ball escapes past a paddle.
type PointScored struct {
	Player int // the player who scored
	Score1 int
	Score2 int
}

// MatchWon fires when a score reaches the winning threshold.
type MatchWon struct {
	Player int
}

// Match owns the full state of one two-player match: ball, paddles, scores,
// and the round phase. It is single-threaded; the caller steps it once per
// frame and must serialize access.
type Match struct {
	cfg     utils.Config
	ball    *Ball
	paddle1 *Paddle
	paddle2 *Paddle

	phase  Phase
	armed  bool // a countdown gate is running
	gateAt time.Time

	now func() time.Time
	rng *rand.Rand
}

// NewMatch creates a match in the startup phase. The clock and random
// source may be nil, in which case the wall clock and a time-seeded
// generator are used; tests inject their own.
func NewMatch(cfg utils.Config, now func() time.Time, rng *rand.Rand) *Match {
	if now == nil {
		now = time.Now
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Match{
		cfg:     cfg,
		ball:    NewBall(cfg),
		paddle1: NewPaddle(cfg, 1),
		paddle2: NewPaddle(cfg, 2),
		phase:   PhaseStartup,
		now:     now,
		rng:     rng,
	}
}

// Step advances the match by one frame and returns the renderable state
// plus any events the frame produced.
func (m *Match) Step(in Input) (Snapshot, []Event) {
	var events []Event

	switch m.phase {
	case PhaseStartup:
		events = m.stepStartup(in)
	case PhasePlay:
		events = m.stepPlay(in)
	case PhaseRoundEnd:
		events = m.stepRoundEnd()
	}

	return m.snapshot(), events
}

func (m *Match) stepStartup(in Input) []Event {
	if m.armed {
		if m.now().Sub(m.gateAt) >= m.cfg.StartupDelay {
			m.paddle1.Score = 0
			m.paddle2.Score = 0
			m.serve()
			return []Event{RoundStarted{}}
		}
		return nil
	}
	if in.Start {
		m.armed = true
		m.gateAt = m.now()
		return []Event{CountdownStarted{Seconds: int(m.cfg.StartupDelay / time.Second)}}
	}
	return nil
}

func (m *Match) stepRoundEnd() []Event {
	if m.armed {
		if m.now().Sub(m.gateAt) >= m.cfg.RoundDelay {
			m.serve()
			return []Event{RoundStarted{}}
		}
		return nil
	}
	// The win check runs on the first round-end frame, before the pause
	// timer arms.
	if m.paddle1.Score >= m.cfg.WinningScore || m.paddle2.Score >= m.cfg.WinningScore {
		winner := 1
		if m.paddle2.Score > m.paddle1.Score {
			winner = 2
		}
		m.paddle1.Score = 0
		m.paddle2.Score = 0
		m.phase = PhaseStartup
		return []Event{MatchWon{Player: winner}}
	}
	m.armed = true
	m.gateAt = m.now()
	return nil
}

func (m *Match) stepPlay(in Input) []Event {
	var events []Event

	// 1. Paddle movement, clamped to the stage.
	if in.P1Up {
		m.paddle1.Move(-1)
	}
	if in.P1Down {
		m.paddle1.Move(1)
	}
	if in.P2Up {
		m.paddle2.Move(-1)
	}
	if in.P2Down {
		m.paddle2.Move(1)
	}
	p1Dir := paddleDirection(in.P1Up, in.P1Down)
	p2Dir := paddleDirection(in.P2Up, in.P2Down)

	// 2. English: a moving paddle overlapping the incoming ball drags the
	// ball's vertical speed along with it.
	target, targetDir := m.paddle2, p2Dir
	if m.ball.Vx < 0 {
		target, targetDir = m.paddle1, p1Dir
	}
	if m.ball.Rect().Overlaps(target.Rect()) && targetDir != 0 {
		d := float64(targetDir)
		m.ball.Vy = math.Abs(m.ball.Vy)*d + d*m.cfg.PaddleSpeed
	}

	// 3. Both resolvers run from the pre-move position; a paddle hit
	// outranks a wall hit in the same frame.
	paddleHit, paddleOK := m.ball.HitPaddle(target)
	wallHit, wallOK := m.ball.HitWall(m.cfg.StageWidth, m.cfg.StageHeight)

	switch {
	case paddleOK:
		m.ball.X = paddleHit.Position.X
		m.ball.Y = paddleHit.Position.Y
		m.bouncePaddle(paddleHit, target)

	case wallOK:
		switch wallHit.Side {
		case Top, Bottom:
			// Reflect only; the ball holds position this frame.
			m.ball.Vy = -m.ball.Vy
		case Left:
			m.paddle2.Score++
			events = append(events, PointScored{Player: 2, Score1: m.paddle1.Score, Score2: m.paddle2.Score})
			m.phase = PhaseRoundEnd
		case Right:
			m.paddle1.Score++
			events = append(events, PointScored{Player: 1, Score1: m.paddle1.Score, Score2: m.paddle2.Score})
			m.phase = PhaseRoundEnd
		}

	default:
		m.ball.Move()
	}

	// Edge-case guard: whatever the resolvers said, the ball must stay
	// inside the stage vertically.
	if m.ball.Y <= 0 {
		m.ball.Y = 0.1
	} else if m.ball.Y >= m.cfg.StageHeight {
		m.ball.Y = m.cfg.StageHeight - m.cfg.BallSize - 0.1
	}

	return events
}

// bouncePaddle applies the velocity response for a paddle hit: reflect the
// horizontal speed with a 0.5 speed-up away from the paddle, bend the
// vertical speed toward the contact offset from the paddle center, and
// clamp the result so the trajectory never exceeds 3x the horizontal speed.
func (m *Match) bouncePaddle(hit Hit, paddle *Paddle) {
	switch hit.Side {
	case Left:
		m.ball.Vx = -m.ball.Vx - 0.5
		m.ball.Vy += (m.ball.Y + m.ball.Size/2 - (paddle.Y + paddle.Height/2)) / 5
	case Right:
		m.ball.Vx = -m.ball.Vx + 0.5
		m.ball.Vy += (m.ball.Y + m.ball.Size/2 - (paddle.Y + paddle.Height/2)) / 5
	default:
		m.ball.Vy = -m.ball.Vy
	}

	hi := math.Max(m.ball.Vx*3, -m.ball.Vx*3)
	lo := math.Min(m.ball.Vx*3, -m.ball.Vx*3)
	if m.ball.Vy >= hi {
		m.ball.Vy = hi
	} else if m.ball.Vy <= lo {
		m.ball.Vy = lo
	}
}

// serve resets positions, randomizes the ball velocity, and enters play.
// Scores are left alone; the startup path zeroes them separately.
func (m *Match) serve() {
	m.ball.ResetPosition()
	m.paddle1.ResetPosition()
	m.paddle2.ResetPosition()
	m.ball.Serve(m.rng, m.cfg.BallSpeed)
	m.armed = false
	m.phase = PhasePlay
}

// countdownRemaining returns the seconds left on the active gate, or 0.
func (m *Match) countdownRemaining() float64 {
	if !m.armed {
		return 0
	}
	total := m.cfg.StartupDelay
	if m.phase == PhaseRoundEnd {
		total = m.cfg.RoundDelay
	}
	remaining := total - m.now().Sub(m.gateAt)
	if remaining < 0 {
		return 0
	}
	return remaining.Seconds()
}

func paddleDirection(up, down bool) int {
	dir := 0
	if up {
		dir--
	}
	if down {
		dir++
	}
	return dir
}
