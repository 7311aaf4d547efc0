package flow

import (
	"io"
	"sync"

	"github.com/gammazero/deque"

	"github.com/Yuras/io-streams"
)

// ToSlice drains in into a slice, preserving order. The entire source is
// held in memory, so this is unsuitable for unbounded sources. On error the
// elements read so far are returned alongside it.
func ToSlice[T any](in *streams.InputStream[T]) ([]T, error) {
	var out []T
	for {
		v, err := in.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
}

// Collector accumulates values pushed into its stream until Flush. The
// accumulator is guarded by a mutex so concurrent writers may share the
// stream; a delivery and a flush never interleave. This is the only piece of
// shared mutable state in the library.
type Collector[T any] struct {
	mu  sync.Mutex
	buf deque.Deque[T]
	out *streams.OutputStream[T]
}

// NewCollector returns an empty collector. Nothing else may touch the
// accumulator: the stream it backs is the only way in, Flush the only way
// out.
func NewCollector[T any]() *Collector[T] {
	c := &Collector[T]{}
	c.out = streams.SinkToStream(c.push)
	return c
}

func (c *Collector[T]) push(v T, ok bool) (streams.Sink[T], error) {
	if !ok {
		return nil, nil
	}
	c.mu.Lock()
	c.buf.PushBack(v)
	c.mu.Unlock()
	return nil, nil
}

// Stream returns the OutputStream backed by this collector.
func (c *Collector[T]) Stream() *streams.OutputStream[T] {
	return c.out
}

// Flush atomically returns everything delivered since the previous Flush, in
// delivery order, and resets the accumulator so the stream can be reused for
// the next batch.
func (c *Collector[T]) Flush() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, 0, c.buf.Len())
	for c.buf.Len() > 0 {
		out = append(out, c.buf.PopFront())
	}
	return out
}

// CollectOutput hands a collector-backed OutputStream to action and flushes
// exactly once after it returns. If action fails, its error is returned and
// the collected values are dropped.
func CollectOutput[T any](action func(out *streams.OutputStream[T]) error) ([]T, error) {
	c := NewCollector[T]()
	if err := action(c.Stream()); err != nil {
		return nil, err
	}
	return c.Flush(), nil
}

// WriteAll delivers every element of vs to out in order. It never closes
// out: writing a finite block must not terminate the stream.
func WriteAll[T any](out *streams.OutputStream[T], vs []T) error {
	for _, v := range vs {
		if err := out.Write(v); err != nil {
			return err
		}
	}
	return nil
}
