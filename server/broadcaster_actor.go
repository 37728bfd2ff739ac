// File: server/broadcaster_actor.go
package server

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/veddel/gopong/troupe"
	"golang.org/x/net/websocket"
)

// BroadcasterActor pushes snapshots to every subscribed websocket and
// prunes connections that fail to accept a write.
type BroadcasterActor struct {
	clients  map[*websocket.Conn]bool
	matchPID *troupe.PID // notified when a dead connection is detected
	selfPID  *troupe.PID
}

// NewBroadcasterProducer creates a producer for the BroadcasterActor.
func NewBroadcasterProducer(matchPID *troupe.PID) troupe.Producer {
	return func() troupe.Actor {
		return &BroadcasterActor{
			clients:  make(map[*websocket.Conn]bool),
			matchPID: matchPID,
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx troupe.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case troupe.Started:

	case AddClient:
		if msg.Conn != nil {
			a.clients[msg.Conn] = true
		}

	case RemoveClient:
		if msg.Conn != nil {
			delete(a.clients, msg.Conn)
		}

	case BroadcastStateCommand:
		a.broadcastState(ctx, msg)

	case troupe.Stopping:
		a.closeAllConnections()

	case troupe.Stopped:

	default:
		fmt.Printf("BroadcasterActor %s: unknown message type %T\n", a.selfPID, msg)
	}
}

// broadcastState sends the snapshot to all clients using JSON encoding and
// reports connections the write proves dead.
func (a *BroadcasterActor) broadcastState(ctx troupe.Context, msg BroadcastStateCommand) {
	if len(a.clients) == 0 {
		return
	}

	var disconnected []*websocket.Conn
	for ws := range a.clients {
		if err := websocket.JSON.Send(ws, &msg.State); err != nil {
			if isClosedConnError(err) {
				disconnected = append(disconnected, ws)
			} else {
				fmt.Printf("BroadcasterActor %s: failed to write state to %s: %v\n", a.selfPID, ws.RemoteAddr(), err)
			}
		}
	}

	for _, ws := range disconnected {
		delete(a.clients, ws)
		if a.matchPID != nil {
			ctx.Engine().Send(a.matchPID, ClientDisconnect{Conn: ws}, a.selfPID)
		}
	}
}

func (a *BroadcasterActor) closeAllConnections() {
	if len(a.clients) == 0 {
		return
	}
	fmt.Printf("BroadcasterActor %s: closing %d connections\n", a.selfPID, len(a.clients))
	for ws := range a.clients {
		_ = ws.Close()
	}
	a.clients = make(map[*websocket.Conn]bool)
}

func isClosedConnError(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset by peer") ||
		strings.Contains(errStr, "EOF")
}
