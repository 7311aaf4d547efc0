// Package streams provides a minimal pull/push streaming protocol over a
// single element type: an InputStream is pulled one value at a time until
// exhaustion, an OutputStream is pushed one value at a time until closed.
// Bulk utilities built on the protocol live in the flow package; adapters to
// OS files, io.Reader/io.Writer and channels live in the extension package.
package streams

import (
	"io"
	"sync"
)

// InputStream is a pull source of values. Read returns io.EOF once the
// source is exhausted and keeps returning it on every subsequent call.
//
// An InputStream is single-owner: it is not safe for concurrent use from
// multiple goroutines. Wrap it with LockingInput if it must be shared.
type InputStream[T any] struct {
	next     func() (T, error)
	pushback []T
	err      error
	mu       *sync.Mutex
}

// NewInputStream wraps a producer function as an InputStream. The producer
// reports exhaustion by returning io.EOF; the stream makes exhaustion sticky
// even if the producer is not.
func NewInputStream[T any](next func() (T, error)) *InputStream[T] {
	return &InputStream[T]{next: next}
}

// Read pulls the next value from the stream. Values pushed back with Unread
// are returned first, most recent first. After the producer reports io.EOF
// or fails, Read keeps returning the same error; a stream that failed must
// not be assumed resumable.
func (s *InputStream[T]) Read() (T, error) {
	s.lock()
	defer s.unlock()
	return s.read()
}

// Peek returns the next value without consuming it.
func (s *InputStream[T]) Peek() (T, error) {
	s.lock()
	defer s.unlock()
	v, err := s.read()
	if err != nil {
		return v, err
	}
	s.pushback = append(s.pushback, v)
	return v, nil
}

// Unread pushes v back onto the stream so that the next Read returns it.
// Pushback is honored even after the producer reported exhaustion;
// stickiness applies to the underlying producer, not to pushed-back values.
func (s *InputStream[T]) Unread(v T) {
	s.lock()
	defer s.unlock()
	s.pushback = append(s.pushback, v)
}

func (s *InputStream[T]) read() (T, error) {
	if n := len(s.pushback); n > 0 {
		v := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return v, nil
	}
	var zero T
	if s.err != nil {
		return zero, s.err
	}
	v, err := s.next()
	if err != nil {
		s.err = err
		return zero, err
	}
	return v, nil
}

func (s *InputStream[T]) lock() {
	if s.mu != nil {
		s.mu.Lock()
	}
}

func (s *InputStream[T]) unlock() {
	if s.mu != nil {
		s.mu.Unlock()
	}
}

// Sink is a single-shot consumer behavior. It handles one value (ok=true) or
// the close signal (ok=false) and returns the sink to use for the next
// delivery; returning nil keeps the current behavior. Stateful consumers are
// written as a chain of sink transitions rather than as objects with mutable
// fields.
type Sink[T any] func(v T, ok bool) (Sink[T], error)

// Discard is the null sink: it ignores every delivery and close signal and
// returns itself forever.
func Discard[T any](T, bool) (Sink[T], error) {
	return Discard[T], nil
}

// OutputStream is a push sink of values. Deliver values with Write and
// signal end of stream with Close.
//
// An OutputStream is single-owner: it is not safe for concurrent use from
// multiple goroutines. Wrap it with LockingOutput if it must be shared.
type OutputStream[T any] struct {
	sink   Sink[T]
	closed bool
	mu     *sync.Mutex
}

// Write delivers v to the stream's current sink and installs the sink it
// returns as the new current behavior. Writes after Close are ignored.
func (s *OutputStream[T]) Write(v T) error {
	s.lock()
	defer s.unlock()
	next, err := s.sink(v, true)
	if next != nil {
		s.sink = next
	}
	return err
}

// Close signals end of stream. The current sink observes the close signal
// exactly once; afterwards the null sink is installed so that further
// deliveries are ignored. Close is idempotent.
func (s *OutputStream[T]) Close() error {
	s.lock()
	defer s.unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	var zero T
	_, err := s.sink(zero, false)
	s.sink = Discard[T]
	return err
}

func (s *OutputStream[T]) lock() {
	if s.mu != nil {
		s.mu.Lock()
	}
}

func (s *OutputStream[T]) unlock() {
	if s.mu != nil {
		s.mu.Unlock()
	}
}

// FromSlice returns an InputStream yielding the elements of vs in order.
func FromSlice[T any](vs []T) *InputStream[T] {
	i := 0
	return NewInputStream(func() (T, error) {
		if i >= len(vs) {
			var zero T
			return zero, io.EOF
		}
		v := vs[i]
		i++
		return v, nil
	})
}

// NullInput returns an InputStream that is already exhausted.
func NullInput[T any]() *InputStream[T] {
	return NewInputStream(func() (T, error) {
		var zero T
		return zero, io.EOF
	})
}

// NullOutput returns an OutputStream that ignores everything written to it.
func NullOutput[T any]() *OutputStream[T] {
	return SinkToStream(Discard[T])
}
