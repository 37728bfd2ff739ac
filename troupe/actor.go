package troupe

// Actor processes messages sequentially from its mailbox.
type Actor interface {
	Receive(ctx Context)
}

// Producer creates a new actor instance.
type Producer func() Actor

// Props configures actor creation.
type Props struct {
	producer Producer
}

// NewProps creates a Props object for the given producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("troupe: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce creates a new actor instance using the configured producer.
func (p *Props) Produce() Actor {
	return p.producer()
}

// Context gives an actor access to the system while processing one message.
type Context interface {
	// Engine returns the engine managing this actor.
	Engine() *Engine
	// Self returns the PID of the actor processing the message.
	Self() *PID
	// Sender returns the PID of the sending actor, if any.
	Sender() *PID
	// Message returns the message being processed.
	Message() interface{}
	// RequestID returns the pending Ask request ID, or "" for plain sends.
	RequestID() string
	// Reply answers the pending Ask request. It is a no-op for plain sends.
	Reply(response interface{})
}

type actorContext struct {
	engine    *Engine
	self      *PID
	sender    *PID
	message   interface{}
	requestID string
}

func (c *actorContext) Engine() *Engine      { return c.engine }
func (c *actorContext) Self() *PID           { return c.self }
func (c *actorContext) Sender() *PID         { return c.sender }
func (c *actorContext) Message() interface{} { return c.message }
func (c *actorContext) RequestID() string    { return c.requestID }

func (c *actorContext) Reply(response interface{}) {
	if c.requestID == "" {
		return
	}
	c.engine.reply(c.requestID, response)
}
