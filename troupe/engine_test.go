package troupe

import (
	"errors"
	"testing"
	"time"
)

// captureActor records every message it receives on a channel.
type captureActor struct {
	received chan interface{}
}

func newCaptureActor(buffer int) *captureActor {
	return &captureActor{received: make(chan interface{}, buffer)}
}

func (a *captureActor) Receive(ctx Context) {
	a.received <- ctx.Message()
}

func waitFor(t *testing.T, ch chan interface{}) interface{} {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a message")
		return nil
	}
}

func TestSpawnDeliversStarted(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := newCaptureActor(8)
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	if pid == nil {
		t.Fatal("Spawn returned nil PID")
	}

	if msg := waitFor(t, actor.received); msg != (Started{}) {
		t.Errorf("first message = %T, want Started", msg)
	}
}

func TestSendDeliversInOrder(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := newCaptureActor(8)
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	waitFor(t, actor.received) // Started

	engine.Send(pid, "first", nil)
	engine.Send(pid, "second", nil)

	if msg := waitFor(t, actor.received); msg != "first" {
		t.Errorf("got %v, want first", msg)
	}
	if msg := waitFor(t, actor.received); msg != "second" {
		t.Errorf("got %v, want second", msg)
	}
}

// echoActor replies to every Ask with the message it received.
type echoActor struct{}

func (a *echoActor) Receive(ctx Context) {
	if _, ok := ctx.Message().(string); ok {
		ctx.Reply(ctx.Message())
	}
}

func TestAskReceivesReply(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return &echoActor{} }))

	response, err := engine.Ask(pid, "ping", time.Second)
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if response != "ping" {
		t.Errorf("Ask response = %v, want ping", response)
	}
}

// silentActor never replies.
type silentActor struct{}

func (a *silentActor) Receive(ctx Context) {}

func TestAskTimesOut(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return &silentActor{} }))

	_, err := engine.Ask(pid, "anyone there", 50*time.Millisecond)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Ask error = %v, want ErrTimeout", err)
	}
}

// panicActor blows up on any non-lifecycle message.
type panicActor struct{}

func (a *panicActor) Receive(ctx Context) {
	switch ctx.Message().(type) {
	case Started, Stopping, Stopped:
	default:
		panic("boom")
	}
}

func TestAskPanicReturnsError(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return &panicActor{} }))

	response, err := engine.Ask(pid, "trigger", time.Second)
	if err != nil {
		t.Fatalf("Ask returned transport error: %v", err)
	}
	if _, ok := response.(error); !ok {
		t.Fatalf("Ask response = %T, want an error from the recovered panic", response)
	}
}

func TestStopDeliversLifecycle(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor := newCaptureActor(8)
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	waitFor(t, actor.received) // Started

	engine.Stop(pid)

	sawStopping, sawStopped := false, false
	for i := 0; i < 2; i++ {
		switch waitFor(t, actor.received).(type) {
		case Stopping:
			sawStopping = true
		case Stopped:
			sawStopped = true
		}
	}
	if !sawStopping || !sawStopped {
		t.Errorf("lifecycle incomplete: stopping=%v stopped=%v", sawStopping, sawStopped)
	}
}

func TestShutdownRejectsSpawn(t *testing.T) {
	engine := NewEngine()
	engine.Shutdown(time.Second)

	if pid := engine.Spawn(NewProps(func() Actor { return &silentActor{} })); pid != nil {
		t.Errorf("Spawn after Shutdown returned %v, want nil", pid)
	}
}
