// Package chops provides iteration helpers and the non-blocking
// channel receive used to inspect coroutine-style iterators.
package chops

// Status represents the result of a non-blocking channel
// receive. It can be Ok, Closed, or Blocked.
type Status int

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case Closed:
		return "Closed"
	case Blocked:
		return "Blocked"
	default:
		return "<invalid chops.Status>"
	}
}

const (
	// The channel delivered an element without blocking.
	Ok Status = iota
	// The channel is closed and drained.
	Closed
	// The channel is open but nothing is ready to be received.
	Blocked
)

// Result is the outcome of TryRecv.
type Result[T any] struct {
	value  T
	status Status
}

// Get returns the received element and the Status of the receive.
// The element is the zero T unless the Status is Ok.
func (r Result[T]) Get() (T, Status) {
	return r.value, r.status
}

// Match performs an exhaustive match on the Result.
func (r Result[T]) Match(ok func(T), closed, blocked func()) {
	switch r.status {
	case Ok:
		ok(r.value)
	case Closed:
		closed()
	case Blocked:
		blocked()
	default:
		panic("unhandled case in Match")
	}
}

// TryRecv attempts a non-blocking receive from a channel.
func TryRecv[T any](ch <-chan T) Result[T] {
	select {
	case x, ok := <-ch:
		if !ok {
			return Result[T]{status: Closed}
		}
		return Result[T]{value: x, status: Ok}
	default:
		return Result[T]{status: Blocked}
	}
}
