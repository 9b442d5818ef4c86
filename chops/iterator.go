package chops

// Iterator describes some iterator over a data structure.
// Next must be called before every Item, including the first.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Collect exhausts i and returns every item it yielded, in order.
// sizeHint is only used to preallocate the result.
func Collect[T any](i Iterator[T], sizeHint int) []T {
	out := make([]T, 0, sizeHint)
	if i == nil {
		return out
	}

	for i.Next() {
		out = append(out, i.Item())
	}

	return out
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iterator is exhausted
// or after Stop is called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is already closed, this doesn't need to be called.
// Guard it with a sync.Once when several goroutines may stop.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration:
//
//	co := CoIterate[T](tr.InOrderIterator())
//	for k := range co.Items() {
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// The goroutine started here exits once the iterator is exhausted or
// Stop is called, so with the usage above it does not outlive the loop.
// A nil iterator yields a closed channel.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}
