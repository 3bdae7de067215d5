package stream

import (
	"hash"
	"io"

	"github.com/jmgilman/go/resfs/errors"
)

// sdbm is the SDBM string hash as a hash.Hash32.
type sdbm uint32

// NewSDBM returns a hash.Hash32 computing the SDBM hash
// h = b + (h << 6) + (h << 16) - h over every byte written.
func NewSDBM() hash.Hash32 {
	var h sdbm
	return &h
}

func (h *sdbm) Write(p []byte) (int, error) {
	s := uint32(*h)
	for _, b := range p {
		s = uint32(b) + (s << 6) + (s << 16) - s
	}
	*h = sdbm(s)
	return len(p), nil
}

func (h *sdbm) Sum(b []byte) []byte {
	s := uint32(*h)
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (h *sdbm) Reset()         { *h = 0 }
func (h *sdbm) Size() int      { return 4 }
func (h *sdbm) BlockSize() int { return 1 }
func (h *sdbm) Sum32() uint32  { return uint32(*h) }

// Checksum hashes the whole of d from position 0 and restores the original
// position before returning.
func Checksum(d Deserializer) (uint32, error) {
	pos := d.Position()
	if _, err := d.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	h := NewSDBM()
	_, err := io.Copy(h, d)

	if _, serr := d.Seek(pos, io.SeekStart); err == nil && serr != nil {
		err = serr
	}
	if err != nil {
		if errors.GetCode(err) != errors.CodeUnknown {
			return 0, err
		}
		return 0, errors.Wrapf(err, errors.CodeIO, "checksum of %s failed", d.Name())
	}
	return h.Sum32(), nil
}
