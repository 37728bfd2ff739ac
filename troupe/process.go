package troupe

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of one actor: its mailbox, its goroutine,
// and its stop signal.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	props   *Props
	mailbox chan envelope
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan envelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// sendEnvelope enqueues a message without blocking; a full mailbox drops
// the message and logs it.
func (p *process) sendEnvelope(env envelope) {
	_, isStopping := env.message.(Stopping)
	_, isStopped := env.message.(Stopped)
	if p.stopped.Load() && !isStopping && !isStopped {
		return
	}

	select {
	case p.mailbox <- env:
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid.ID, env.message)
	}
}

// run is the actor's goroutine: create the instance, drain the mailbox,
// deliver Stopped on the way out.
func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(envelope{message: Stopped{}})
		}
		p.engine.remove(p.pid)
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		fmt.Printf("Actor %s producer returned nil actor\n", p.pid.ID)
		return
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(envelope{message: Stopping{}})
			}
			return
		case env := <-p.mailbox:
			p.invokeReceive(env)
			if _, isStopping := env.message.(Stopping); isStopping {
				p.stopped.Store(true)
				return
			}
		}
	}
}

// invokeReceive dispatches one message with panic isolation. A panicking
// handler answers any pending Ask with the recovered error so callers do
// not wait out their timeout.
func (p *process) invokeReceive(env envelope) {
	ctx := &actorContext{
		engine:    p.engine,
		self:      p.pid,
		sender:    env.sender,
		message:   env.message,
		requestID: env.requestID,
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in actor %s: %v\nStack trace:\n%s\n", p.pid.ID, r, string(debug.Stack()))
			if env.requestID != "" {
				p.engine.reply(env.requestID, fmt.Errorf("actor %s panicked: %v", p.pid.ID, r))
			}
		}
	}()
	p.actor.Receive(ctx)
}
