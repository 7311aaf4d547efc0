package flow

import (
	"io"

	"github.com/Yuras/io-streams"
)

// Take limits in to at most n elements. Elements beyond the limit stay
// unread in the underlying stream.
func Take[T any](n int, in *streams.InputStream[T]) *streams.InputStream[T] {
	return streams.NewInputStream(func() (T, error) {
		if n <= 0 {
			var zero T
			return zero, io.EOF
		}
		v, err := in.Read()
		if err != nil {
			return v, err
		}
		n--
		return v, nil
	})
}

// SkipToEOF reads and discards the remainder of in.
func SkipToEOF[T any](in *streams.InputStream[T]) error {
	for {
		if _, err := in.Read(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
