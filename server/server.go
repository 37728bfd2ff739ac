package server

import (
	"github.com/veddel/gopong/troupe"
	"github.com/veddel/gopong/utils"
)

// Server holds the service boundary's shared references: the actor engine
// and the match actor all handlers talk to.
type Server struct {
	engine   *troupe.Engine
	cfg      utils.Config
	matchPID *troupe.PID
}

// New creates a Server around an already-spawned match actor.
func New(engine *troupe.Engine, cfg utils.Config, matchPID *troupe.PID) *Server {
	return &Server{
		engine:   engine,
		cfg:      cfg,
		matchPID: matchPID,
	}
}

// Engine returns the actor engine.
func (s *Server) Engine() *troupe.Engine { return s.engine }

// MatchPID returns the PID of the match actor.
func (s *Server) MatchPID() *troupe.PID { return s.matchPID }
