// File: server/match_actor.go
package server

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/veddel/gopong/game"
	"github.com/veddel/gopong/troupe"
	"github.com/veddel/gopong/utils"
)

// MatchActor owns one game.Match and serializes all access to it: a ticker
// goroutine posts matchTick messages to its mailbox, input messages update
// the per-player directions, and every tick steps the match and hands the
// snapshot to the broadcaster.
type MatchActor struct {
	cfg    utils.Config
	engine *troupe.Engine
	match  *game.Match

	directions   map[int]string // player -> latest held direction
	startPending bool

	latest         game.Snapshot
	broadcasterPID *troupe.PID
	ticker         *time.Ticker
	stopTickerCh   chan struct{}
	selfPID        *troupe.PID
}

// NewMatchActorProducer creates a producer for the MatchActor.
func NewMatchActorProducer(engine *troupe.Engine, cfg utils.Config) troupe.Producer {
	return func() troupe.Actor {
		return &MatchActor{
			cfg:          cfg,
			engine:       engine,
			match:        game.NewMatch(cfg, nil, nil),
			directions:   map[int]string{1: utils.DirectionNone, 2: utils.DirectionNone},
			stopTickerCh: make(chan struct{}),
		}
	}
}

// Receive is the main message handler for the MatchActor.
func (a *MatchActor) Receive(ctx troupe.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in MatchActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case troupe.Started:
		a.broadcasterPID = a.engine.Spawn(troupe.NewProps(NewBroadcasterProducer(a.selfPID)))
		a.latest, _ = a.match.Step(game.Input{})
		a.ticker = time.NewTicker(a.cfg.GameTickPeriod)
		go a.runTickerLoop()

	case matchTick:
		a.step()

	case ClientConnect:
		if msg.Conn != nil && a.broadcasterPID != nil {
			a.engine.Send(a.broadcasterPID, AddClient{Conn: msg.Conn}, a.selfPID)
		}

	case ClientDisconnect:
		if msg.Conn != nil && a.broadcasterPID != nil {
			a.engine.Send(a.broadcasterPID, RemoveClient{Conn: msg.Conn}, a.selfPID)
		}

	case PlayerInput:
		a.handleInput(msg)

	case GetSnapshot:
		ctx.Reply(a.latest)

	case troupe.Stopping:
		if a.ticker != nil {
			a.ticker.Stop()
			select {
			case <-a.stopTickerCh:
			default:
				close(a.stopTickerCh)
			}
		}
		if a.broadcasterPID != nil {
			a.engine.Stop(a.broadcasterPID)
		}

	case troupe.Stopped:

	default:
		fmt.Printf("MatchActor %s: unknown message type %T\n", a.selfPID, msg)
		if ctx.RequestID() != "" {
			ctx.Reply(fmt.Errorf("unknown message type: %T", msg))
		}
	}
}

func (a *MatchActor) handleInput(msg PlayerInput) {
	if msg.Player != 1 && msg.Player != 2 {
		return
	}
	switch utils.DirectionFromString(msg.Direction) {
	case utils.DirectionStart:
		a.startPending = true
	case utils.DirectionUp:
		a.directions[msg.Player] = utils.DirectionUp
	case utils.DirectionDown:
		a.directions[msg.Player] = utils.DirectionDown
	case utils.DirectionNone:
		a.directions[msg.Player] = utils.DirectionNone
	}
}

// step advances the match one frame and publishes the result.
func (a *MatchActor) step() {
	in := game.Input{
		P1Up:   a.directions[1] == utils.DirectionUp,
		P1Down: a.directions[1] == utils.DirectionDown,
		P2Up:   a.directions[2] == utils.DirectionUp,
		P2Down: a.directions[2] == utils.DirectionDown,
		Start:  a.startPending,
	}
	a.startPending = false

	snapshot, events := a.match.Step(in)
	a.latest = snapshot
	a.announce(events)

	if a.broadcasterPID != nil {
		a.engine.Send(a.broadcasterPID, BroadcastStateCommand{State: snapshot}, a.selfPID)
	}
}

// announce logs the frame's events to the console, keeping the original
// game's commentary.
func (a *MatchActor) announce(events []game.Event) {
	for _, event := range events {
		switch e := event.(type) {
		case game.CountdownStarted:
			fmt.Printf("Starting the game in %d seconds...\n", e.Seconds)
		case game.RoundStarted:
			fmt.Println("Round started!")
		case game.PointScored:
			fmt.Printf("Score is: %d to %d\n", e.Score1, e.Score2)
		case game.MatchWon:
			fmt.Printf("Player %d wins!\n", e.Player)
		}
	}
}

// runTickerLoop posts matchTick messages to the actor's own mailbox at the
// configured frame rate.
func (a *MatchActor) runTickerLoop() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in MatchActor %s ticker loop: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	for {
		select {
		case <-a.stopTickerCh:
			return
		case _, ok := <-a.ticker.C:
			if !ok {
				return
			}
			select {
			case <-a.stopTickerCh:
				return
			default:
				a.engine.Send(a.selfPID, matchTick{}, nil)
			}
		}
	}
}
