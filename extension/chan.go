package extension

import (
	"io"

	"github.com/Yuras/io-streams"
)

// NewChanInput exposes ch as an InputStream. The stream is exhausted once ch
// is closed and drained.
func NewChanInput[T any](ch <-chan T) *streams.InputStream[T] {
	return streams.NewInputStream(func() (T, error) {
		v, ok := <-ch
		if !ok {
			var zero T
			return zero, io.EOF
		}
		return v, nil
	})
}

// NewChanOutput exposes ch as an OutputStream. Close closes the channel, so
// the channel must not be written to by anyone else.
func NewChanOutput[T any](ch chan<- T) *streams.OutputStream[T] {
	return streams.SinkToStream(func(v T, ok bool) (streams.Sink[T], error) {
		if !ok {
			close(ch)
			return nil, nil
		}
		ch <- v
		return nil, nil
	})
}
