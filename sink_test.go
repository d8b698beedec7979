package netkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSink(t *testing.T) {
	s := NewStringSink()
	assert.Equal(t, int64(0), s.Len())

	require.NoError(t, s.Append([]byte("hello ")))
	require.NoError(t, s.Append([]byte("world")))
	assert.Equal(t, "hello world", s.String())
	assert.Equal(t, int64(11), s.Len())

	require.NoError(t, s.Reset())
	assert.Equal(t, int64(0), s.Len())
	assert.Empty(t, s.String())
}

func TestBufferSinkAppendAndReset(t *testing.T) {
	b := NewBufferSink()
	require.NoError(t, b.Append([]byte{1, 2, 3}))
	assert.Equal(t, []byte{1, 2, 3}, b.Bytes())

	require.NoError(t, b.Reset())
	assert.Equal(t, int64(0), b.Len())
}

func TestBufferSinkWriteAt(t *testing.T) {
	b := NewBufferSink()
	require.NoError(t, b.Preallocate(10))
	assert.Equal(t, int64(10), b.Len())

	written, err := b.WriteAt([]byte("cdef"), 2)
	require.NoError(t, err)
	assert.Equal(t, 4, written)

	written, err = b.WriteAt([]byte("ab"), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	assert.Equal(t, []byte("abcdef"), b.Bytes()[:6])
}

func TestBufferSinkWriteAtGrows(t *testing.T) {
	b := NewBufferSink()
	_, err := b.WriteAt([]byte("xyz"), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(8), b.Len())
	assert.Equal(t, []byte("xyz"), b.Bytes()[5:])
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	s, err := NewFileSink(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Append([]byte("hello")))
	assert.Equal(t, int64(5), s.Len())

	require.NoError(t, s.Preallocate(10))
	assert.Equal(t, int64(10), s.Len())

	_, err = s.WriteAt([]byte("world"), 5)
	require.NoError(t, err)

	require.NoError(t, s.Reset())
	assert.Equal(t, int64(0), s.Len())

	require.NoError(t, s.Append([]byte("fresh")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
}
