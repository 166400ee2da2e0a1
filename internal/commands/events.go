package commands

import "github.com/google/uuid"

// EventType names the two notifications the dispatcher broadcasts.
type EventType string

const (
	// EventExecute is emitted after a command's handler returns
	// successfully, carrying the command, its arguments, and the result.
	EventExecute EventType = "execute"

	// EventError is emitted on every execution failure, carrying the raw
	// input and the error, so passive observers (a toast component, a
	// status line) can react without every caller handling errors itself.
	EventError EventType = "error"
)

// Event is a dispatcher notification delivered to subscribers.
type Event struct {
	// Type discriminates which of the remaining fields are set.
	Type EventType

	// ID uniquely identifies the execution attempt; the execute and
	// error events of one Execute call never share an ID with another.
	ID string

	// Command is the executed command. Set on EventExecute only.
	Command *Command

	// Args are the parsed arguments. Set on EventExecute only.
	Args []string

	// Result is the handler's return value. Set on EventExecute only.
	Result any

	// Input is the raw input that failed. Set on EventError only.
	Input string

	// Err is the failure. Set on EventError only.
	Err error
}

// Subscriber receives dispatcher events. Delivery is synchronous on the
// executing goroutine, in subscription order; a slow subscriber delays the
// Execute call that triggered it.
type Subscriber func(Event)

// notifier is the dispatcher-owned observer list. It deliberately has no
// dependency on any UI event system; collaborators bring their own bridge.
type notifier struct {
	subscribers []subscription
	nextID      int
}

type subscription struct {
	id int
	fn Subscriber
}

// subscribe adds fn and returns a cancel function that removes it again.
func (n *notifier) subscribe(fn Subscriber) func() {
	id := n.nextID
	n.nextID++
	n.subscribers = append(n.subscribers, subscription{id: id, fn: fn})
	return func() {
		for i, s := range n.subscribers {
			if s.id == id {
				n.subscribers = append(n.subscribers[:i], n.subscribers[i+1:]...)
				return
			}
		}
	}
}

// emit delivers the event to every subscriber in subscription order.
func (n *notifier) emit(event Event) {
	for _, s := range n.subscribers {
		s.fn(event)
	}
}

// newEventID mints the unique ID shared by all notifications of one
// execution attempt.
func newEventID() string {
	return uuid.NewString()
}
