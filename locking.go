package streams

import "sync"

// LockingInput wraps in so that Read, Peek and Unread are serialized by a
// mutex, for callers that must share one stream across goroutines. The inner
// stream must not be used directly afterwards.
func LockingInput[T any](in *InputStream[T]) *InputStream[T] {
	s := NewInputStream(in.Read)
	s.mu = new(sync.Mutex)
	return s
}

// LockingOutput wraps out so that Write and Close are serialized by a mutex,
// for callers that must share one stream across goroutines. The inner stream
// must not be used directly afterwards.
func LockingOutput[T any](out *OutputStream[T]) *OutputStream[T] {
	s := SinkToStream(func(v T, ok bool) (Sink[T], error) {
		if !ok {
			return nil, out.Close()
		}
		return nil, out.Write(v)
	})
	s.mu = new(sync.Mutex)
	return s
}
