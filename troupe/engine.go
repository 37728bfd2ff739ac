package troupe

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ErrTimeout is returned by Ask when the actor does not reply in time.
var ErrTimeout = errors.New("troupe: ask timed out")

// Engine manages actor lifecycles and message dispatching.
type Engine struct {
	pidCounter uint64
	reqCounter uint64
	actors     map[string]*process
	pending    map[string]chan interface{}
	mu         sync.RWMutex // protects actors
	pendingMu  sync.Mutex   // protects pending
	stopping   atomic.Bool
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors:  make(map[string]*process),
		pending: make(map[string]chan interface{}),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor, returning its PID. It returns nil
// when the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		fmt.Println("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	e.Send(pid, Started{}, nil)
	return pid
}

// Send delivers a message to the actor's mailbox. Unknown PIDs are dropped
// as dead letters.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	e.send(pid, envelope{sender: sender, message: message})
}

// Ask sends a message and waits for the actor to Reply, up to the timeout.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	reqID := fmt.Sprintf("req-%d", atomic.AddUint64(&e.reqCounter, 1))
	replyCh := make(chan interface{}, 1)

	e.pendingMu.Lock()
	e.pending[reqID] = replyCh
	e.pendingMu.Unlock()

	e.send(pid, envelope{message: message, requestID: reqID})

	select {
	case response := <-replyCh:
		return response, nil
	case <-time.After(timeout):
		e.pendingMu.Lock()
		delete(e.pending, reqID)
		e.pendingMu.Unlock()
		return nil, ErrTimeout
	}
}

func (e *Engine) send(pid *PID, env envelope) {
	if pid == nil {
		return
	}

	_, isStopping := env.message.(Stopping)
	_, isStopped := env.message.(Stopped)
	isSystemMsg := isStopping || isStopped || (env.message == Started{})
	if e.stopping.Load() && !isSystemMsg {
		return
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if !ok {
		fmt.Printf("Dead letter: actor %s not found, dropping %T\n", pid.ID, env.message)
		return
	}
	proc.sendEnvelope(env)
}

// reply resolves a pending Ask request. Late replies (after the timeout
// removed the request) are dropped.
func (e *Engine) reply(reqID string, response interface{}) {
	e.pendingMu.Lock()
	replyCh, ok := e.pending[reqID]
	if ok {
		delete(e.pending, reqID)
	}
	e.pendingMu.Unlock()

	if ok {
		replyCh <- response
	}
}

// Stop requests an actor to stop processing messages and shut down.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if ok {
		e.Send(pid, Stopping{}, nil)
		select {
		case <-proc.stopCh:
		default:
			close(proc.stopCh)
		}
	}
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits up to timeout for them to terminate.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	pidsToStop := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pidsToStop = append(pidsToStop, proc.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pidsToStop {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	if len(e.actors) > 0 {
		fmt.Printf("Engine shutdown timeout: %d actors did not stop gracefully\n", len(e.actors))
		e.actors = make(map[string]*process)
	}
	e.mu.Unlock()
}
