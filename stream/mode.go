package stream

import "os"

// Mode is the access mode of a File.
//
// Text and binary modes open files identically; no newline translation is
// performed. The distinction is kept for callers that record intent.
type Mode int

// Access modes.
const (
	ModeReadBinary Mode = iota + 1
	ModeWriteBinary
	ModeReadWriteBinary
	ModeRead
	ModeWrite
	ModeReadWrite
)

// CanRead reports whether the mode permits reads.
func (m Mode) CanRead() bool {
	switch m {
	case ModeReadBinary, ModeReadWriteBinary, ModeRead, ModeReadWrite:
		return true
	}
	return false
}

// CanWrite reports whether the mode permits writes.
func (m Mode) CanWrite() bool {
	switch m {
	case ModeWriteBinary, ModeReadWriteBinary, ModeWrite, ModeReadWrite:
		return true
	}
	return false
}

// IsBinary reports whether m is one of the binary modes.
func (m Mode) IsBinary() bool {
	return m == ModeReadBinary || m == ModeWriteBinary || m == ModeReadWriteBinary
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= ModeReadBinary && m <= ModeReadWrite
}

// Flags returns the os.OpenFile flags for m.
//
// Read modes open an existing file. Write modes create or truncate. Read-write
// modes create the file if needed and keep existing content.
func (m Mode) Flags() int {
	switch {
	case m.CanRead() && m.CanWrite():
		return os.O_RDWR | os.O_CREATE
	case m.CanWrite():
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	default:
		return os.O_RDONLY
	}
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeReadBinary:
		return "read-binary"
	case ModeWriteBinary:
		return "write-binary"
	case ModeReadWriteBinary:
		return "read-write-binary"
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeReadWrite:
		return "read-write"
	default:
		return "invalid"
	}
}

// ParseMode converts a mode name as returned by String back to a Mode.
func ParseMode(s string) (Mode, bool) {
	for m := ModeReadBinary; m <= ModeReadWrite; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}
