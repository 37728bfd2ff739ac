// File: server/handlers.go
package server

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/veddel/gopong/game"
	"github.com/veddel/gopong/render"
	"github.com/veddel/gopong/troupe"

	"golang.org/x/net/websocket"
)

const askTimeout = time.Second

// HandleSubscribe registers the websocket with the match actor and runs the
// input read loop until the connection dies.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.RemoteAddr().String()
		fmt.Printf("HandleSubscribe: new connection from %s\n", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		s.engine.Send(s.matchPID, ClientConnect{Conn: ws}, nil)
		s.readLoop(ws)
	}
}

// readLoop reads InputMessage JSON from one connection and forwards it to
// the match actor. It exits on any read error and signals the disconnect.
func (s *Server) readLoop(conn *websocket.Conn) {
	connectionAddr := conn.RemoteAddr().String()

	defer func() {
		s.engine.Send(s.matchPID, ClientDisconnect{Conn: conn}, nil)
		fmt.Printf("ReadLoop: finished for %s\n", connectionAddr)
	}()

	for {
		var msg InputMessage
		err := websocket.JSON.Receive(conn, &msg)
		if err != nil {
			isClosedErr := err == io.EOF ||
				strings.Contains(err.Error(), "use of closed network connection") ||
				strings.Contains(err.Error(), "closed")
			if !isClosedErr {
				fmt.Printf("ReadLoop: error receiving from %s: %v\n", connectionAddr, err)
			}
			return
		}

		s.engine.Send(s.matchPID, PlayerInput{
			Conn:      conn,
			Player:    msg.Player,
			Direction: msg.Direction,
		}, nil)
	}
}

// HandleState serves the latest snapshot as JSON via HTTP GET.
func (s *Server) HandleState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := s.askSnapshot(w)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(snapshot.ToJson()); err != nil {
			fmt.Println("Error writing HTTP game state:", err)
		}
	}
}

// HandleFrame serves the latest snapshot rendered as an ASCII frame.
func (s *Server) HandleFrame() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := s.askSnapshot(w)
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		frame := render.Frame(snapshot, s.cfg.StageWidth, s.cfg.StageHeight, render.DefaultCols, render.DefaultRows)
		if _, err := fmt.Fprint(w, frame); err != nil {
			fmt.Println("Error writing HTTP frame:", err)
		}
	}
}

func (s *Server) askSnapshot(w http.ResponseWriter) (game.Snapshot, bool) {
	response, err := s.engine.Ask(s.matchPID, GetSnapshot{}, askTimeout)
	if err != nil {
		if err == troupe.ErrTimeout {
			http.Error(w, "match actor timed out", http.StatusServiceUnavailable)
		} else {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return game.Snapshot{}, false
	}
	snapshot, ok := response.(game.Snapshot)
	if !ok {
		http.Error(w, "unexpected reply from match actor", http.StatusInternalServerError)
		return game.Snapshot{}, false
	}
	return snapshot, true
}
