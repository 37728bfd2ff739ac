package game

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the renderable state handed to the presentation boundary
// after every frame.
type Snapshot struct {
	Phase     string  `json:"phase"`
	Countdown float64 `json:"countdown"` // seconds left on the active gate, 0 otherwise
	Ball      Ball    `json:"ball"`
	Paddle1   Paddle  `json:"paddle1"`
	Paddle2   Paddle  `json:"paddle2"`
}

func (m *Match) snapshot() Snapshot {
	return Snapshot{
		Phase:     m.phase.String(),
		Countdown: m.countdownRemaining(),
		Ball:      *m.ball,
		Paddle1:   *m.paddle1,
		Paddle2:   *m.paddle2,
	}
}

// ToJson marshals the snapshot for the state feed.
func (s Snapshot) ToJson() []byte {
	data, err := json.Marshal(s)
	if err != nil {
		fmt.Println("Error marshalling snapshot:", err)
		return []byte("{}")
	}
	return data
}
