package stream

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resfs/errors"
)

func TestReadOnlyMemory_HasNoWriter(t *testing.T) {
	var d any = NewReadOnlyMemory(make([]byte, 8), WithMemoryName("header"))

	_, ok := d.(io.Writer)
	assert.False(t, ok)
	_, ok = d.(Serializer)
	assert.False(t, ok)

	r := d.(*MemoryReader)
	assert.Equal(t, "header", r.Name())
	assert.Equal(t, int64(8), r.Size())
	assert.Equal(t, int64(0), r.Position())
}

func TestMemory_ReadPastEnd(t *testing.T) {
	m := NewReadOnlyMemory([]byte("abcde"))

	p := make([]byte, 8)
	n, err := m.Read(p)
	assert.Equal(t, 5, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "abcde", string(p[:n]))
	assert.True(t, m.IsEOF())

	n, err = m.Read(p)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestMemory_WriteTruncates(t *testing.T) {
	m := NewMemory(make([]byte, 4))
	_, err := m.Seek(2, io.SeekStart)
	require.NoError(t, err)

	n, err := m.Write([]byte("xyz"))
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, []byte{0, 0, 'x', 'y'}, m.Bytes())
	assert.Equal(t, int64(4), m.Size())
	assert.True(t, m.IsEOF())
}

func TestMemory_Seek(t *testing.T) {
	tests := []struct {
		name   string
		start  int64
		offset int64
		whence int
		want   int64
	}{
		{"start", 0, 3, io.SeekStart, 3},
		{"current", 2, 3, io.SeekCurrent, 5},
		{"end", 0, -2, io.SeekEnd, 8},
		{"before start clamps", 4, -10, io.SeekCurrent, 0},
		{"past end clamps", 0, 100, io.SeekStart, 10},
		{"end forward clamps", 0, 5, io.SeekEnd, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory(make([]byte, 10))
			_, err := m.Seek(tt.start, io.SeekStart)
			require.NoError(t, err)

			got, err := m.Seek(tt.offset, tt.whence)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, m.Position())
		})
	}
}

func TestMemory_SeekHugeOffset(t *testing.T) {
	tests := []struct {
		name   string
		whence int
	}{
		{"start", io.SeekStart},
		{"current", io.SeekCurrent},
		{"end", io.SeekEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMemory(make([]byte, 10))
			_, err := m.Seek(5, io.SeekStart)
			require.NoError(t, err)

			pos, err := m.Seek(math.MaxInt64, tt.whence)
			require.NoError(t, err)
			assert.Equal(t, m.Size(), pos)
			assert.Equal(t, m.Size(), m.Position())
			assert.True(t, m.IsEOF())

			pos, err = m.Seek(math.MinInt64, tt.whence)
			require.NoError(t, err)
			assert.Equal(t, int64(0), pos)
		})
	}
}

func TestMemory_SeekInvalidWhence(t *testing.T) {
	m := NewMemory(make([]byte, 10))
	_, _ = m.Seek(4, io.SeekStart)

	pos, err := m.Seek(1, 42)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.Equal(t, int64(4), pos)
	assert.Equal(t, int64(4), m.Position())
}

func TestMemory_Name(t *testing.T) {
	assert.Equal(t, "memory", NewMemory(nil).Name())
	assert.Equal(t, "header", NewMemory(nil, WithMemoryName("header")).Name())
}

func TestMemory_Empty(t *testing.T) {
	m := NewMemory(nil)
	assert.True(t, m.IsEOF())

	n, err := m.Write([]byte{1})
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.ErrShortWrite)
}

func TestReadOnlyView(t *testing.T) {
	m := NewMemory([]byte("data"))
	view := ReadOnly(m)

	_, isWriter := view.(io.Writer)
	assert.False(t, isWriter)
	assert.Equal(t, view, ReadOnly(view))

	b, err := io.ReadAll(view)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
	assert.True(t, m.IsEOF())
}
