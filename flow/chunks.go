package flow

import (
	"fmt"
	"io"

	"github.com/Yuras/io-streams"
)

// Chunks regroups the elements of in into slices of size elements. Every
// chunk has exactly size elements except possibly the last, which has
// between 1 and size; an exhausted source yields no chunks. Concatenating
// the chunks in order reproduces the source exactly.
//
// A non-positive size is a programming error and is rejected up front rather
// than looping forever trying to fill an unfillable buffer.
func Chunks[T any](size int, in *streams.InputStream[T]) (*streams.InputStream[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("flow: chunk size must be positive, got %d", size)
	}
	return streams.FromGenerator(func(yield func(v []T)) error {
		chunk := make([]T, 0, size)
		for {
			v, err := in.Read()
			if err == io.EOF {
				if len(chunk) > 0 {
					yield(chunk)
				}
				return nil
			}
			if err != nil {
				return err
			}
			chunk = append(chunk, v)
			if len(chunk) == size {
				yield(chunk)
				chunk = make([]T, 0, size)
			}
		}
	}), nil
}
