package stream

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/jmgilman/go/resfs/errors"
)

// Encoder writes typed values to a Serializer using the layout Decoder reads.
//
// A write that the stream accepts only partially returns io.ErrShortWrite.
type Encoder struct {
	s   Serializer
	buf [8]byte
}

// NewEncoder returns an Encoder writing to s.
func NewEncoder(s Serializer) *Encoder {
	return &Encoder{s: s}
}

// Serializer returns the underlying stream.
func (enc *Encoder) Serializer() Serializer {
	return enc.s
}

func (enc *Encoder) write(b []byte) error {
	n, err := enc.s.Write(b)
	if err != nil {
		return err
	}
	if n < len(b) {
		return io.ErrShortWrite
	}
	return nil
}

// WriteUint8 writes one byte.
func (enc *Encoder) WriteUint8(v uint8) error {
	enc.buf[0] = v
	return enc.write(enc.buf[:1])
}

// WriteInt8 writes one signed byte.
func (enc *Encoder) WriteInt8(v int8) error {
	return enc.WriteUint8(uint8(v))
}

// WriteUint16 writes a little-endian uint16.
func (enc *Encoder) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(enc.buf[:2], v)
	return enc.write(enc.buf[:2])
}

// WriteInt16 writes a little-endian int16.
func (enc *Encoder) WriteInt16(v int16) error {
	return enc.WriteUint16(uint16(v))
}

// WriteUint32 writes a little-endian uint32.
func (enc *Encoder) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(enc.buf[:4], v)
	return enc.write(enc.buf[:4])
}

// WriteInt32 writes a little-endian int32.
func (enc *Encoder) WriteInt32(v int32) error {
	return enc.WriteUint32(uint32(v))
}

// WriteUint64 writes a little-endian uint64.
func (enc *Encoder) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(enc.buf[:8], v)
	return enc.write(enc.buf[:8])
}

// WriteInt64 writes a little-endian int64.
func (enc *Encoder) WriteInt64(v int64) error {
	return enc.WriteUint64(uint64(v))
}

// WriteBool writes 1 for true and 0 for false.
func (enc *Encoder) WriteBool(v bool) error {
	if v {
		return enc.WriteUint8(1)
	}
	return enc.WriteUint8(0)
}

// WriteFloat32 writes the IEEE-754 bits of v.
func (enc *Encoder) WriteFloat32(v float32) error {
	return enc.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes the IEEE-754 bits of v.
func (enc *Encoder) WriteFloat64(v float64) error {
	return enc.WriteUint64(math.Float64bits(v))
}

func (enc *Encoder) writeFloats(vs ...float32) error {
	for _, v := range vs {
		if err := enc.WriteFloat32(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteVector2 writes X and Y.
func (enc *Encoder) WriteVector2(v Vector2) error {
	return enc.writeFloats(v.X, v.Y)
}

// WriteVector3 writes X, Y and Z.
func (enc *Encoder) WriteVector3(v Vector3) error {
	return enc.writeFloats(v.X, v.Y, v.Z)
}

// WriteVector4 writes X, Y, Z and W.
func (enc *Encoder) WriteVector4(v Vector4) error {
	return enc.writeFloats(v.X, v.Y, v.Z, v.W)
}

// WritePackedVector3 writes v as three int16 values quantized against maxAbs.
// Components outside [-maxAbs, maxAbs] are clamped.
func (enc *Encoder) WritePackedVector3(v Vector3, maxAbs float32) error {
	q, err := PackVector3(v, maxAbs)
	if err != nil {
		return err
	}
	for _, c := range q {
		if err := enc.WriteInt16(c); err != nil {
			return err
		}
	}
	return nil
}

// WriteString writes the length of s as a uint32 followed by its bytes.
func (enc *Encoder) WriteString(s string) error {
	if uint64(len(s)) > math.MaxUint32 {
		return errors.Newf(errors.CodeInvalidInput, "string of %d bytes is too long", len(s))
	}
	if err := enc.WriteUint32(uint32(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return enc.write([]byte(s))
}

// WriteFileID writes the four bytes of id.
func (enc *Encoder) WriteFileID(id FileID) error {
	return enc.write(id[:])
}

// WriteLine writes s followed by "\r\n".
func (enc *Encoder) WriteLine(s string) error {
	return enc.write([]byte(s + "\r\n"))
}

// WriteText writes s as-is.
func (enc *Encoder) WriteText(s string) error {
	return enc.write([]byte(s))
}
