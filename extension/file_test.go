package extension_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuras/io-streams"
	"github.com/Yuras/io-streams/extension"
	"github.com/Yuras/io-streams/flow"
)

type countingCloser struct {
	io.Reader
	closes int
}

func (c *countingCloser) Close() error {
	c.closes++
	return nil
}

type countingWriteCloser struct {
	bytes.Buffer
	closes int
}

func (c *countingWriteCloser) Close() error {
	c.closes++
	return nil
}

func TestWithReaderAsInput(t *testing.T) {
	t.Run("closes exactly once on success", func(t *testing.T) {
		cc := &countingCloser{Reader: strings.NewReader("data")}

		err := extension.WithReaderAsInput(cc, func(in *streams.InputStream[[]byte]) error {
			return flow.SkipToEOF(in)
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, cc.closes)
	})

	t.Run("closes exactly once when the action fails", func(t *testing.T) {
		boom := errors.New("boom")
		cc := &countingCloser{Reader: strings.NewReader("")}

		err := extension.WithReaderAsInput(cc, func(in *streams.InputStream[[]byte]) error {
			return boom
		})
		assert.Equal(t, boom, err)
		assert.Equal(t, 1, cc.closes)
	})
}

func TestWithWriterAsOutput(t *testing.T) {
	t.Run("closes exactly once and keeps the data", func(t *testing.T) {
		cw := &countingWriteCloser{}

		err := extension.WithWriterAsOutput(cw, func(out *streams.OutputStream[[]byte]) error {
			return out.Write([]byte("payload"))
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, cw.closes)
		assert.Equal(t, "payload", cw.String())
	})

	t.Run("closes exactly once when the action fails", func(t *testing.T) {
		boom := errors.New("boom")
		cw := &countingWriteCloser{}

		err := extension.WithWriterAsOutput(cw, func(out *streams.OutputStream[[]byte]) error {
			return boom
		})
		assert.Equal(t, boom, err)
		assert.Equal(t, 1, cw.closes)
	})
}

func TestFileHelpers(t *testing.T) {
	t.Run("write then read round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.bin")

		err := extension.WithFileAsOutput(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644,
			func(out *streams.OutputStream[[]byte]) error {
				if err := out.Write([]byte("hello ")); err != nil {
					return err
				}
				return out.Write([]byte("file"))
			})
		assert.NoError(t, err)

		var buf bytes.Buffer
		err = extension.WithFileAsInput(path, func(in *streams.InputStream[[]byte]) error {
			for {
				chunk, err := in.Read()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				buf.Write(chunk)
			}
		})
		assert.NoError(t, err)
		assert.Equal(t, "hello file", buf.String())
	})

	t.Run("failing action on an empty file still closes and propagates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty")
		assert.NoError(t, os.WriteFile(path, nil, 0o644))

		boom := errors.New("boom")
		err := extension.WithFileAsInput(path, func(in *streams.InputStream[[]byte]) error {
			return boom
		})
		assert.Equal(t, boom, err)

		// The handle was released: the file can be removed and re-opened.
		assert.NoError(t, os.Remove(path))
	})

	t.Run("missing file reports the open error", func(t *testing.T) {
		err := extension.WithFileAsInput(filepath.Join(t.TempDir(), "nope"),
			func(in *streams.InputStream[[]byte]) error { return nil })
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
