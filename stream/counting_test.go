package stream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountingWriter(t *testing.T) {
	var sink bytes.Buffer
	cw := NewCountingWriter(&sink)

	require.Zero(t, cw.Tell())

	n, err := cw.Write([]byte("0 en cat\n"))
	require.NoError(t, err)
	require.Equal(t, 9, n)
	require.Equal(t, int64(9), cw.Tell())

	_, err = cw.Write([]byte("1 en dog\n"))
	require.NoError(t, err)
	require.Equal(t, int64(18), cw.Tell())
	require.Equal(t, "0 en cat\n1 en dog\n", sink.String())
}

type failingWriter struct{ n int }

func (fw *failingWriter) Write(p []byte) (int, error) {
	return fw.n, errors.New("sink failed")
}

func TestCountingWriterPartialWrite(t *testing.T) {
	cw := NewCountingWriter(&failingWriter{n: 3})

	_, err := cw.Write([]byte("0 en cat\n"))
	require.Error(t, err)
	require.Equal(t, int64(3), cw.Tell(), "position advances by bytes actually written")
}
