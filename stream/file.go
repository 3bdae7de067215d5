package stream

import (
	"context"
	"io"
	"io/fs"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/logging"
	"github.com/jmgilman/go/resfs/platform"
)

// File is a stream over a platform file handle.
//
// A File starts closed. Open binds it to a file, Close releases the handle.
// A File may be reopened on another name after Close. It is not safe for
// concurrent use.
type File struct {
	fsys platform.FS
	log  *logging.Logger
	perm fs.FileMode

	handle platform.File
	name   string
	mode   Mode
	pos    int64
	size   int64

	// Set after a write; the next read flushes and re-seeks the handle.
	readSync bool
	// Set after a read; the next write re-seeks the handle.
	writeSync bool

	checksum      uint32
	checksumValid bool
}

// FileOption configures a File.
type FileOption func(*File)

// WithLogger sets the logger used for debug records.
func WithLogger(l *logging.Logger) FileOption {
	return func(f *File) {
		f.log = l
	}
}

// WithPerm sets the permission bits used when a write mode creates a file.
// The default is 0644.
func WithPerm(perm fs.FileMode) FileOption {
	return func(f *File) {
		f.perm = perm
	}
}

// NewFile returns a closed File that opens names through fsys.
func NewFile(fsys platform.FS, opts ...FileOption) *File {
	f := &File{
		fsys: fsys,
		log:  logging.NewNop(),
		perm: 0o644,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OpenFile creates a File and opens name with mode.
func OpenFile(fsys platform.FS, name string, mode Mode, opts ...FileOption) (*File, error) {
	f := NewFile(fsys, opts...)
	if err := f.Open(name, mode); err != nil {
		return nil, err
	}
	return f, nil
}

// Open binds the File to name. Any handle already open is closed first.
func (f *File) Open(name string, mode Mode) error {
	if !mode.Valid() {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "invalid file mode %d", int(mode)),
			"path", name,
		)
	}
	if err := f.Close(); err != nil {
		return err
	}

	handle, err := f.fsys.OpenFile(name, mode.Flags(), f.perm)
	if err != nil {
		f.log.Debug(context.Background(), "open failed", "path", name, "mode", mode.String(), "error", err)
		return errors.FromFS(err, "open", name)
	}

	size, err := handle.Seek(0, io.SeekEnd)
	if err == nil {
		_, err = handle.Seek(0, io.SeekStart)
	}
	if err != nil {
		_ = handle.Close()
		return errors.FromFS(err, "open", name)
	}

	f.handle = handle
	f.name = name
	f.mode = mode
	f.pos = 0
	f.size = size
	f.readSync = false
	f.writeSync = false
	f.checksumValid = false

	f.log.Debug(context.Background(), "opened stream", "path", name, "mode", mode.String(), "size", size)
	return nil
}

// Close releases the handle. Closing a closed File is a no-op.
func (f *File) Close() error {
	if f.handle == nil {
		return nil
	}

	err := f.handle.Close()
	f.log.Debug(context.Background(), "closed stream", "path", f.name)

	f.handle = nil
	f.pos = 0
	f.size = 0
	f.readSync = false
	f.writeSync = false
	f.checksumValid = false

	if err != nil {
		return errors.FromFS(err, "close", f.name)
	}
	return nil
}

// Read reads up to len(p) bytes, never past Size(). When fewer bytes remain
// than requested it returns the bytes available and io.EOF.
func (f *File) Read(p []byte) (int, error) {
	if f.handle == nil {
		return 0, ErrClosed
	}
	if !f.mode.CanRead() {
		f.log.Debug(context.Background(), "read on write-only stream", "path", f.name)
		return 0, ErrWriteOnly
	}
	if len(p) == 0 {
		return 0, nil
	}

	if f.readSync {
		if err := f.resync(true); err != nil {
			return 0, err
		}
		f.readSync = false
	}

	remaining := f.size - f.pos
	if remaining <= 0 {
		return 0, io.EOF
	}
	want := p
	if int64(len(want)) > remaining {
		want = want[:remaining]
	}

	n, err := io.ReadFull(f.handle, want)
	f.pos += int64(n)
	if f.mode.CanWrite() {
		f.writeSync = true
	}

	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		// The file shrank underneath us.
		f.size = f.pos
		return n, io.EOF
	case err != nil:
		return n, errors.FromFS(err, "read", f.name)
	case n < len(p):
		return n, io.EOF
	}
	return n, nil
}

// Write writes p at the current position and grows Size() as needed.
func (f *File) Write(p []byte) (int, error) {
	if f.handle == nil {
		return 0, ErrClosed
	}
	if !f.mode.CanWrite() {
		f.log.Debug(context.Background(), "write on read-only stream", "path", f.name)
		return 0, ErrReadOnly
	}
	if len(p) == 0 {
		return 0, nil
	}

	if f.writeSync {
		if err := f.resync(false); err != nil {
			return 0, err
		}
		f.writeSync = false
	}

	n, err := f.handle.Write(p)
	f.pos += int64(n)
	f.size = max(f.size, f.pos)
	f.checksumValid = false
	if f.mode.CanRead() {
		f.readSync = true
	}

	if err != nil {
		return n, errors.FromFS(err, "write", f.name)
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// resync re-aligns the handle with the tracked position before a change of
// direction, flushing pending writes first when flush is set.
func (f *File) resync(flush bool) error {
	if flush {
		if err := f.handle.Sync(); err != nil {
			return errors.FromFS(err, "flush", f.name)
		}
	}
	if _, err := f.handle.Seek(f.pos, io.SeekStart); err != nil {
		return errors.FromFS(err, "seek", f.name)
	}
	return nil
}

// Seek moves the position. The result is clamped to [0, Size()].
func (f *File) Seek(offset int64, whence int) (int64, error) {
	if f.handle == nil {
		return 0, ErrClosed
	}

	target, err := clampSeek(f.pos, f.size, offset, whence)
	if err != nil {
		return f.pos, err
	}
	if _, err := f.handle.Seek(target, io.SeekStart); err != nil {
		return f.pos, errors.FromFS(err, "seek", f.name)
	}

	f.pos = target
	f.readSync = false
	f.writeSync = false
	return target, nil
}

// Flush commits buffered writes to the backing store.
func (f *File) Flush() error {
	if f.handle == nil {
		return ErrClosed
	}
	if err := f.handle.Sync(); err != nil {
		return errors.FromFS(err, "flush", f.name)
	}
	f.readSync = false
	return nil
}

// Checksum returns the SDBM hash of the whole file. It is computed once and
// cached until the next Write or Open. The position is not changed.
func (f *File) Checksum() (uint32, error) {
	if f.handle == nil {
		return 0, ErrClosed
	}
	if f.checksumValid {
		return f.checksum, nil
	}

	sum, err := Checksum(f)
	if err != nil {
		return 0, err
	}
	f.checksum = sum
	f.checksumValid = true
	return sum, nil
}

// ReadText returns the bytes from the current position to the end.
func (f *File) ReadText() (string, error) {
	b, err := NewDecoder(f).ReadAll()
	return string(b), err
}

// Name returns the name passed to Open.
func (f *File) Name() string { return f.name }

// Position returns the current offset.
func (f *File) Position() int64 { return f.pos }

// Size returns the file size as tracked by the stream.
func (f *File) Size() int64 { return f.size }

// IsEOF reports whether the position has reached the end of the file.
func (f *File) IsEOF() bool { return f.pos >= f.size }

// IsOpen reports whether the File holds a handle.
func (f *File) IsOpen() bool { return f.handle != nil }

// Mode returns the mode passed to Open.
func (f *File) Mode() Mode { return f.mode }

// IsReadOnly reports whether the open mode forbids writes.
func (f *File) IsReadOnly() bool { return f.handle != nil && !f.mode.CanWrite() }

// IsWriteOnly reports whether the open mode forbids reads.
func (f *File) IsWriteOnly() bool { return f.handle != nil && !f.mode.CanRead() }

// Handle returns the platform handle, or nil when closed.
func (f *File) Handle() platform.File { return f.handle }

var _ ReadWriter = (*File)(nil)
