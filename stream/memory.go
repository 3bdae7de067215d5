package stream

import "io"

// Memory is a stream over a fixed-size byte slice.
//
// Reads, writes and seeks never leave the slice: transfers are truncated and
// report the number of bytes actually moved. Use NewReadOnlyMemory for a
// stream without write support.
type Memory struct {
	buf  []byte
	pos  int64
	name string
}

// MemoryOption configures a Memory.
type MemoryOption func(*Memory)

// WithMemoryName sets the name reported by Name. The default is "memory".
func WithMemoryName(name string) MemoryOption {
	return func(m *Memory) {
		m.name = name
	}
}

// NewMemory returns a writable stream over buf. The stream never grows;
// writes past len(buf) are truncated.
func NewMemory(buf []byte, opts ...MemoryOption) *Memory {
	m := &Memory{buf: buf, name: "memory"}
	for _, opt := range opts {
		opt(m)
	}
	return m
}


// Read copies up to len(p) bytes from the current position. When fewer bytes
// remain than requested, it returns the bytes available and io.EOF.
func (m *Memory) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Write copies p at the current position. When the slice cannot hold all of
// p, the bytes that fit are written and io.ErrShortWrite is returned.
func (m *Memory) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := copy(m.buf[m.pos:], p)
	m.pos += int64(n)
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Seek moves the position. The result is clamped to [0, Size()].
func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	pos, err := clampSeek(m.pos, m.Size(), offset, whence)
	if err != nil {
		return m.pos, err
	}
	m.pos = pos
	return pos, nil
}

// Name returns the stream name.
func (m *Memory) Name() string { return m.name }

// Position returns the current offset.
func (m *Memory) Position() int64 { return m.pos }

// Size returns the length of the backing slice.
func (m *Memory) Size() int64 { return int64(len(m.buf)) }

// IsEOF reports whether the position has reached the end of the slice.
func (m *Memory) IsEOF() bool { return m.pos >= m.Size() }

// Bytes returns the backing slice.
func (m *Memory) Bytes() []byte { return m.buf }

// Checksum hashes the whole buffer. The position is not changed.
func (m *Memory) Checksum() (uint32, error) {
	return Checksum(m)
}

// MemoryReader is a read-only stream over a byte slice. It has no Write
// method, so passing it where a Serializer is expected does not compile.
type MemoryReader struct {
	m Memory
}

// NewReadOnlyMemory returns a read-only stream over data.
func NewReadOnlyMemory(data []byte, opts ...MemoryOption) *MemoryReader {
	return &MemoryReader{m: *NewMemory(data, opts...)}
}

// Read copies up to len(p) bytes from the current position. When fewer bytes
// remain than requested, it returns the bytes available and io.EOF.
func (r *MemoryReader) Read(p []byte) (int, error) { return r.m.Read(p) }

// Seek moves the position. The result is clamped to [0, Size()].
func (r *MemoryReader) Seek(offset int64, whence int) (int64, error) {
	return r.m.Seek(offset, whence)
}

// Name returns the stream name.
func (r *MemoryReader) Name() string { return r.m.name }

// Position returns the current offset.
func (r *MemoryReader) Position() int64 { return r.m.pos }

// Size returns the length of the data.
func (r *MemoryReader) Size() int64 { return r.m.Size() }

// IsEOF reports whether the position has reached the end of the data.
func (r *MemoryReader) IsEOF() bool { return r.m.IsEOF() }

// Checksum hashes the whole buffer. The position is not changed.
func (r *MemoryReader) Checksum() (uint32, error) {
	return Checksum(r)
}

var (
	_ ReadWriter   = (*Memory)(nil)
	_ Deserializer = (*MemoryReader)(nil)
)
