package stream

import (
	"encoding/binary"
	"io"
	"math"
	"strings"

	"github.com/jmgilman/go/resfs/errors"
)

// FileIDSize is the width of a file ID tag in bytes.
const FileIDSize = 4

// FileID is a four-byte tag identifying a file format, such as "MESH".
type FileID [FileIDSize]byte

// MakeFileID builds a FileID from s, padding with spaces or truncating to
// four bytes.
func MakeFileID(s string) FileID {
	id := FileID{' ', ' ', ' ', ' '}
	copy(id[:], s)
	return id
}

// String returns the tag with trailing padding removed.
func (id FileID) String() string {
	return strings.TrimRight(string(id[:]), " ")
}

// Decoder reads typed values from a Deserializer.
//
// Each method either fills the whole value or fails. A read that finds no
// bytes at all returns io.EOF; a read cut short by the end of the stream
// returns io.ErrUnexpectedEOF.
type Decoder struct {
	d   Deserializer
	buf [8]byte
}

// NewDecoder returns a Decoder reading from d.
func NewDecoder(d Deserializer) *Decoder {
	return &Decoder{d: d}
}

// Deserializer returns the underlying stream.
func (dec *Decoder) Deserializer() Deserializer {
	return dec.d
}

func (dec *Decoder) read(n int) ([]byte, error) {
	b := dec.buf[:n]
	if _, err := io.ReadFull(dec.d, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadUint8 reads one byte.
func (dec *Decoder) ReadUint8() (uint8, error) {
	b, err := dec.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads one signed byte.
func (dec *Decoder) ReadInt8() (int8, error) {
	v, err := dec.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a little-endian uint16.
func (dec *Decoder) ReadUint16() (uint16, error) {
	b, err := dec.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadInt16 reads a little-endian int16.
func (dec *Decoder) ReadInt16() (int16, error) {
	v, err := dec.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a little-endian uint32.
func (dec *Decoder) ReadUint32() (uint32, error) {
	b, err := dec.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt32 reads a little-endian int32.
func (dec *Decoder) ReadInt32() (int32, error) {
	v, err := dec.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads a little-endian uint64.
func (dec *Decoder) ReadUint64() (uint64, error) {
	b, err := dec.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadInt64 reads a little-endian int64.
func (dec *Decoder) ReadInt64() (int64, error) {
	v, err := dec.ReadUint64()
	return int64(v), err
}

// ReadBool reads one byte; any non-zero value is true.
func (dec *Decoder) ReadBool() (bool, error) {
	v, err := dec.ReadUint8()
	return v != 0, err
}

// ReadFloat32 reads an IEEE-754 single.
func (dec *Decoder) ReadFloat32() (float32, error) {
	v, err := dec.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 reads an IEEE-754 double.
func (dec *Decoder) ReadFloat64() (float64, error) {
	v, err := dec.ReadUint64()
	return math.Float64frombits(v), err
}

func (dec *Decoder) readFloats(dst ...*float32) error {
	for i, p := range dst {
		v, err := dec.ReadFloat32()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		*p = v
	}
	return nil
}

// ReadVector2 reads two consecutive float32 values.
func (dec *Decoder) ReadVector2() (Vector2, error) {
	var v Vector2
	err := dec.readFloats(&v.X, &v.Y)
	return v, err
}

// ReadVector3 reads three consecutive float32 values.
func (dec *Decoder) ReadVector3() (Vector3, error) {
	var v Vector3
	err := dec.readFloats(&v.X, &v.Y, &v.Z)
	return v, err
}

// ReadVector4 reads four consecutive float32 values.
func (dec *Decoder) ReadVector4() (Vector4, error) {
	var v Vector4
	err := dec.readFloats(&v.X, &v.Y, &v.Z, &v.W)
	return v, err
}

// ReadPackedVector3 reads a vector written by Encoder.WritePackedVector3 with
// the same maxAbs.
func (dec *Decoder) ReadPackedVector3(maxAbs float32) (Vector3, error) {
	if err := checkMaxAbs(maxAbs); err != nil {
		return Vector3{}, err
	}

	var q [3]int16
	for i := range q {
		v, err := dec.ReadInt16()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return Vector3{}, err
		}
		q[i] = v
	}
	return UnpackVector3(q, maxAbs)
}

// ReadString reads a uint32 length followed by that many bytes. When the
// stream holds fewer bytes than announced, the available bytes are returned
// with io.ErrUnexpectedEOF.
func (dec *Decoder) ReadString() (string, error) {
	n, err := dec.ReadUint32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	avail := max(dec.d.Size()-dec.d.Position(), 0)
	want := min(int64(n), avail)
	b := make([]byte, want)
	got, err := io.ReadFull(dec.d, b)
	if err == nil && want < int64(n) {
		err = io.ErrUnexpectedEOF
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return string(b[:got]), err
}

// ReadFileID reads a four-byte tag.
func (dec *Decoder) ReadFileID() (FileID, error) {
	var id FileID
	b, err := dec.read(FileIDSize)
	if err != nil {
		return id, err
	}
	copy(id[:], b)
	return id, nil
}

// ReadLine reads bytes up to the next "\n", "\r" or "\r\n". The terminator is
// consumed but not returned. The last line of a stream needs no terminator.
// At the end of the stream ReadLine returns "" and io.EOF.
func (dec *Decoder) ReadLine() (string, error) {
	var sb strings.Builder
	var c [1]byte
	for {
		n, err := dec.d.Read(c[:])
		if n == 0 {
			if err == nil || err == io.EOF {
				if sb.Len() == 0 {
					return "", io.EOF
				}
				return sb.String(), nil
			}
			return sb.String(), err
		}

		switch c[0] {
		case '\n':
			return sb.String(), nil
		case '\r':
			return sb.String(), dec.skipLF()
		default:
			sb.WriteByte(c[0])
		}
	}
}

// skipLF consumes a '\n' directly following a '\r'.
func (dec *Decoder) skipLF() error {
	if dec.d.IsEOF() {
		return nil
	}
	var c [1]byte
	n, err := dec.d.Read(c[:])
	if n == 1 && c[0] != '\n' {
		_, err = dec.d.Seek(-1, io.SeekCurrent)
		return err
	}
	if err == io.EOF {
		return nil
	}
	return err
}

// ReadAll returns the remaining bytes of the stream.
func (dec *Decoder) ReadAll() ([]byte, error) {
	avail := max(dec.d.Size()-dec.d.Position(), 0)
	b := make([]byte, avail)
	n, err := io.ReadFull(dec.d, b)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	if err != nil && errors.GetCode(err) == errors.CodeUnknown {
		err = errors.Wrapf(err, errors.CodeIO, "read of %s failed", dec.d.Name())
	}
	return b[:n], err
}
