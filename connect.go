package streams

import "io"

// Connect pulls every value from in and pushes it to out, then closes out.
// If pulling or pushing fails, the error is returned and out is left open.
func Connect[T any](in *InputStream[T], out *OutputStream[T]) error {
	if err := Supply(in, out); err != nil {
		return err
	}
	return out.Close()
}

// Supply pulls every value from in and pushes it to out, leaving out open so
// that further blocks can be supplied to the same stream.
func Supply[T any](in *InputStream[T], out *OutputStream[T]) error {
	for {
		v, err := in.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := out.Write(v); err != nil {
			return err
		}
	}
}
