package flow

import "github.com/Yuras/io-streams"

type MapFunction[T, R any] func(T) R

// Map returns a stream yielding mapFunction applied to each element of in.
func Map[T, R any](mapFunction MapFunction[T, R], in *streams.InputStream[T]) *streams.InputStream[R] {
	return streams.NewInputStream(func() (R, error) {
		v, err := in.Read()
		if err != nil {
			var zero R
			return zero, err
		}
		return mapFunction(v), nil
	})
}

// Contramap returns a stream that applies mapFunction to each element before
// delivering it to out. Closing the returned stream closes out.
func Contramap[T, R any](mapFunction MapFunction[T, R], out *streams.OutputStream[R]) *streams.OutputStream[T] {
	return streams.SinkToStream(func(v T, ok bool) (streams.Sink[T], error) {
		if !ok {
			return nil, out.Close()
		}
		return nil, out.Write(mapFunction(v))
	})
}
