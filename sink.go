package streams

// SinkToStream builds an OutputStream whose behavior starts at initial. Each
// Write runs the current sink once and replaces it with the sink it returns,
// so multi-step consumers (first value initializes, later values accumulate)
// are expressed as a pure sequence of sink transitions.
func SinkToStream[T any](initial Sink[T]) *OutputStream[T] {
	if initial == nil {
		initial = Discard[T]
	}
	return &OutputStream[T]{sink: initial}
}
