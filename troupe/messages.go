package troupe

// --- System messages ---

// Started is the first message an actor receives, delivered right after its
// goroutine starts.
type Started struct{}

// Stopping signals the actor to finish up. No user messages are delivered
// after it.
type Stopping struct{}

// Stopped is the final message an actor receives before its goroutine
// exits.
type Stopped struct{}

// --- Envelope ---

// envelope wraps a user message with its sender and, for Ask calls, the
// pending request ID.
type envelope struct {
	sender    *PID
	message   interface{}
	requestID string
}
