package flow

import "github.com/Yuras/io-streams"

type FilterPredicate[T any] func(T) bool

// Filter returns a stream yielding only the elements of in that satisfy
// filterPredicate.
func Filter[T any](filterPredicate FilterPredicate[T], in *streams.InputStream[T]) *streams.InputStream[T] {
	return streams.NewInputStream(func() (T, error) {
		for {
			v, err := in.Read()
			if err != nil {
				return v, err
			}
			if filterPredicate(v) {
				return v, nil
			}
		}
	})
}
