package streams

import "io"

// FromGenerator runs gen in its own goroutine and exposes the values it
// yields as an InputStream. The goroutine starts on the first Read, and
// yield blocks until the puller takes the value, so gen never runs more than
// one value ahead of consumption. When gen returns, the stream reports
// io.EOF, or the error gen returned.
//
// The goroutine is reclaimed once the stream has been read to exhaustion; a
// generator stream abandoned mid-way keeps its goroutine parked in yield, so
// callers that stop early should drain the remainder.
func FromGenerator[T any](gen func(yield func(v T)) error) *InputStream[T] {
	g := &generator[T]{
		gen:    gen,
		values: make(chan T),
	}
	return NewInputStream(g.next)
}

type generator[T any] struct {
	gen     func(yield func(v T)) error
	values  chan T
	started bool

	// err is written before values is closed and read only after the
	// receive on values fails, so no further synchronization is needed.
	err error
}

func (g *generator[T]) next() (T, error) {
	if !g.started {
		g.started = true
		go func() {
			defer close(g.values)
			g.err = g.gen(func(v T) {
				g.values <- v
			})
		}()
	}

	v, ok := <-g.values
	if !ok {
		var zero T
		if g.err != nil {
			return zero, g.err
		}
		return zero, io.EOF
	}
	return v, nil
}
