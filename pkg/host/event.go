package host

// Listener is an event callback attached to a node.
// Listeners are identified by pointer, never by the function they wrap.
type Listener struct {
	handle func(ev *Event, current *Node)
}

// NewListener wraps fn in a Listener.
func NewListener(fn func(ev *Event, current *Node)) *Listener {
	return &Listener{handle: fn}
}

// Event is a dispatched host event.
type Event struct {
	Name   string
	Target *Node
	Detail any

	stopped   bool
	delegated *Node
}

// StopPropagation stops the event from reaching further listeners or
// delegated handlers.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Delegated returns the highest node whose delegated handlers have already
// run for this event, or nil if delegation has not started.
func (e *Event) Delegated() *Node {
	return e.delegated
}

// MarkDelegated records that delegated handlers up to and including n ran.
func (e *Event) MarkDelegated(n *Node) {
	e.delegated = n
}
