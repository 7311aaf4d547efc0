package extension

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Yuras/io-streams"
)

// WithReaderAsInput wraps rc as a byte-chunk stream, runs action, and closes
// rc exactly once when action returns, normally or via failure. The close
// error is reported only when action itself succeeded.
func WithReaderAsInput(rc io.ReadCloser, action func(in *streams.InputStream[[]byte]) error) (err error) {
	defer func() {
		cerr := rc.Close()
		if err == nil {
			err = cerr
		}
	}()
	return action(NewReaderInput(rc))
}

// WithWriterAsOutput wraps wc as a byte-chunk stream, runs action, and
// closes both the stream and wc exactly once when action returns, normally
// or via failure. The first error wins: action's, then the stream's close,
// then the handle's close.
func WithWriterAsOutput(wc io.WriteCloser, action func(out *streams.OutputStream[[]byte]) error) (err error) {
	out := NewWriterOutput(wc)
	defer func() {
		serr := out.Close()
		cerr := wc.Close()
		if err == nil {
			err = serr
		}
		if err == nil {
			err = cerr
		}
	}()
	return action(out)
}

// WithFileAsInput opens path for reading, hands the byte stream to action,
// and closes the file on every exit path.
func WithFileAsInput(path string, action func(in *streams.InputStream[[]byte]) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("opened file for reading")
	openFilesGauge.Inc()
	defer func() {
		openFilesGauge.Dec()
		log.Debug().Str("path", path).Msg("closed file")
	}()
	return WithReaderAsInput(f, action)
}

// WithFileAsOutput opens path with flag and perm (for a plain create-or-
// truncate use os.O_WRONLY|os.O_CREATE|os.O_TRUNC), hands the byte stream to
// action, and closes the file on every exit path.
func WithFileAsOutput(path string, flag int, perm os.FileMode, action func(out *streams.OutputStream[[]byte]) error) error {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("opened file for writing")
	openFilesGauge.Inc()
	defer func() {
		openFilesGauge.Dec()
		log.Debug().Str("path", path).Msg("closed file")
	}()
	return WithWriterAsOutput(f, action)
}
