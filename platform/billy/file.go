package billy

import (
	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/resfs/platform"
)

// File wraps billy.File to implement platform.File.
// It stores the resolved name since billy.File.Name() may return different
// formats depending on the backend.
type File struct {
	file billy.File
	name string
}

// Read delegates to the underlying billy.File.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write delegates to the underlying billy.File.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek delegates to the underlying billy.File.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Close delegates to the underlying billy.File.
func (f *File) Close() error {
	return f.file.Close()
}

// Name returns the absolute slash path the file was opened with.
func (f *File) Name() string {
	return f.name
}

// Truncate changes the size of the file without moving the offset.
func (f *File) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Sync commits written data to stable storage. Backends without Sync
// (memfs) treat it as a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		return syncer.Sync()
	}
	return nil
}

var _ platform.File = (*File)(nil)
