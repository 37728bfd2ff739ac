// File: server/messages.go
package server

import (
	"github.com/veddel/gopong/game"
	"golang.org/x/net/websocket"
)

// --- WebSocket messages (client -> server) ---

// InputMessage is one control update from a client: which player it steers
// and the direction ("up", "down", "none", or "start").
type InputMessage struct {
	Player    int    `json:"player"`
	Direction string `json:"direction"`
}

// --- MatchActor messages ---

// matchTick drives one frame of the simulation. Posted by the actor's own
// ticker goroutine.
type matchTick struct{}

// ClientConnect registers a new websocket subscriber.
type ClientConnect struct {
	Conn *websocket.Conn
}

// ClientDisconnect signals that a subscriber's connection is gone.
type ClientDisconnect struct {
	Conn *websocket.Conn
}

// PlayerInput carries a parsed InputMessage from the read loop.
type PlayerInput struct {
	Conn      *websocket.Conn
	Player    int
	Direction string
}

// GetSnapshot asks the match actor for the latest frame snapshot. Sent via
// Ask; the reply is a game.Snapshot.
type GetSnapshot struct{}

// --- BroadcasterActor messages ---

// AddClient registers a connection with the broadcaster.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient drops a connection from the broadcaster.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastStateCommand pushes one snapshot to every subscriber.
type BroadcastStateCommand struct {
	State game.Snapshot
}
