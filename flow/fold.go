package flow

import (
	"io"

	"github.com/Yuras/io-streams"
)

type FoldFunction[A, T any] func(A, T) A

// Fold drains in, combining every element into an accumulator seeded with
// init.
func Fold[A, T any](foldFunction FoldFunction[A, T], init A, in *streams.InputStream[T]) (A, error) {
	acc := init
	for {
		v, err := in.Read()
		if err == io.EOF {
			return acc, nil
		}
		if err != nil {
			return acc, err
		}
		acc = foldFunction(acc, v)
	}
}
