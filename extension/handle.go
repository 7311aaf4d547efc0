// Package extension bridges the stream protocol to the outside world:
// io.Reader/io.Writer handles, OS files, channels and the standard streams.
package extension

import (
	"io"

	"github.com/Yuras/io-streams"
)

// DefaultChunkSize bounds how many bytes a reader-backed stream pulls per
// Read, so a single pull never turns into one huge transfer. Pass an
// explicit size to NewReaderInputSize to override it.
const DefaultChunkSize = 32 * 1024

// NewReaderInput exposes r as a stream of byte chunks of at most
// DefaultChunkSize bytes each. The stream does not close r; pair it with
// WithReaderAsInput when the handle's lifetime should be scoped.
func NewReaderInput(r io.Reader) *streams.InputStream[[]byte] {
	return NewReaderInputSize(r, DefaultChunkSize)
}

// NewReaderInputSize is NewReaderInput with an explicit chunk size bound.
// A non-positive size falls back to DefaultChunkSize.
func NewReaderInputSize(r io.Reader, size int) *streams.InputStream[[]byte] {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return streams.NewInputStream(func() ([]byte, error) {
		for {
			buf := make([]byte, size)
			n, err := r.Read(buf)
			if n > 0 {
				// A short read alongside io.EOF is still data; the EOF
				// surfaces on the next pull.
				bytesReadTotal.Add(float64(n))
				return buf[:n], nil
			}
			if err != nil {
				return nil, err
			}
		}
	})
}

// flusher is the optional flush hook honored on Close by writer-backed
// streams. bufio.Writer satisfies it.
type flusher interface {
	Flush() error
}

// NewWriterOutput exposes w as a stream of byte chunks. Close flushes w when
// it supports flushing and is otherwise a no-op; the stream never closes w,
// whose lifetime belongs to the caller (see WithWriterAsOutput).
func NewWriterOutput(w io.Writer) *streams.OutputStream[[]byte] {
	return streams.SinkToStream(func(b []byte, ok bool) (streams.Sink[[]byte], error) {
		if !ok {
			if f, can := w.(flusher); can {
				return nil, f.Flush()
			}
			return nil, nil
		}
		n, err := w.Write(b)
		bytesWrittenTotal.Add(float64(n))
		return nil, err
	})
}
