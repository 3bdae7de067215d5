// Package stream provides typed binary and text streams over files and memory.
//
// Streams are split into two capabilities. A Deserializer can read, seek and
// report its position and size; a Serializer can write. Concrete streams
// implement whichever capabilities their backing store supports, and code
// that only reads should accept a Deserializer so that writes are rejected at
// compile time:
//
//	func loadMesh(d stream.Deserializer) (*Mesh, error) {
//	    dec := stream.NewDecoder(d)
//	    id, err := dec.ReadFileID()
//	    ...
//	}
//
// Decoder and Encoder add the typed helpers (integers, floats, vectors,
// strings, lines) on top of any Deserializer or Serializer, so a new backing
// store only has to provide the byte-level primitives.
//
// # Binary layout
//
// Integers are fixed-width little-endian. Floats are stored as their IEEE-754
// bits, so NaN payloads survive a round trip. Booleans are one byte. Vectors
// are consecutive float32 values. Strings carry a uint32 length prefix and no
// terminator. File IDs are exactly four bytes.
//
// # Misuse
//
// Reading from a write-only stream, writing to a read-only one, or touching a
// closed stream moves zero bytes and returns ErrWriteOnly, ErrReadOnly or
// ErrClosed. Stream state is left unchanged.
package stream

import (
	"io"

	"github.com/jmgilman/go/resfs/errors"
)

// Deserializer is the read capability of a stream.
type Deserializer interface {
	io.Reader
	io.Seeker

	// Name identifies the stream, usually the path it was opened with.
	Name() string

	// Position returns the current byte offset.
	Position() int64

	// Size returns the number of bytes in the stream.
	Size() int64

	// IsEOF reports whether Position() >= Size().
	IsEOF() bool
}

// Serializer is the write capability of a stream.
type Serializer interface {
	io.Writer

	// Name identifies the stream, usually the path it was opened with.
	Name() string
}

// ReadWriter is a stream with both capabilities.
type ReadWriter interface {
	Deserializer
	Serializer
}

// Sentinel errors for stream misuse. Compare with errors.Is.
var (
	ErrReadOnly  = errors.New(errors.CodeUnsupported, "stream is read-only")
	ErrWriteOnly = errors.New(errors.CodeUnsupported, "stream is write-only")
	ErrClosed    = errors.New(errors.CodeClosed, "stream is closed")
)

// readOnly exposes only the Deserializer methods of the wrapped stream.
type readOnly struct {
	Deserializer
}

// ReadOnly returns a view of d without write support, even when the
// underlying stream has it. Type assertions to io.Writer on the view fail.
func ReadOnly(d Deserializer) Deserializer {
	if ro, ok := d.(readOnly); ok {
		return ro
	}
	return readOnly{Deserializer: d}
}

// clampSeek computes the absolute target of a seek and clamps it to [0, size].
// Forward offsets past the end are clamped before adding so huge values
// cannot wrap around to a negative target.
func clampSeek(pos, size, offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		if offset > size-pos {
			return size, nil
		}
		target = pos + offset
	case io.SeekEnd:
		if offset > 0 {
			return size, nil
		}
		target = size + offset
	default:
		return pos, errors.Newf(errors.CodeInvalidInput, "invalid whence %d", whence)
	}
	return min(max(target, 0), size), nil
}
