package extension

import (
	"fmt"
	"io"
	"os"

	"github.com/Yuras/io-streams"
)

// Stdin returns a byte-chunk stream over standard input.
func Stdin() *streams.InputStream[[]byte] {
	return NewReaderInput(os.Stdin)
}

// Stdout returns a byte-chunk stream over standard output.
func Stdout() *streams.OutputStream[[]byte] {
	return NewWriterOutput(os.Stdout)
}

// NewLineOutput returns an OutputStream that prints one element per line to
// w using the fmt default format.
func NewLineOutput[T any](w io.Writer) *streams.OutputStream[T] {
	return streams.SinkToStream(func(v T, ok bool) (streams.Sink[T], error) {
		if !ok {
			return nil, nil
		}
		_, err := fmt.Fprintln(w, v)
		return nil, err
	})
}
