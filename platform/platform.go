// Package platform defines the low-level file I/O capability resfs is built on.
//
// These interfaces stand in for the host's raw file primitives: open, close,
// flush, read, write, seek and tell on an opaque handle, plus metadata and
// directory queries. Higher layers (stream, filesystem) only talk to the
// platform through them, so a local disk, an in-memory tree, or a test double
// can back the whole stack.
//
// Errors follow io/fs conventions: failures are *fs.PathError values wrapping
// fs.ErrNotExist, fs.ErrExist, fs.ErrPermission and friends.
//
// Concrete providers live in platform/billy.
package platform

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// File is an open platform file handle.
//
// Read, Write and Seek follow the io interfaces: Read and Write report the
// number of bytes actually transferred. Seek with io.SeekCurrent and offset 0
// is the "tell" primitive.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Name returns the name the file was opened with.
	Name() string

	// Sync flushes buffered writes to the backing store.
	// Providers without a notion of durability treat it as a no-op.
	Sync() error
}

// ReadFS defines read-only queries.
type ReadFS interface {
	// Stat returns file metadata.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the whole named file.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be determined.
	Exists(name string) (bool, error)
}

// FS is the full set of file primitives.
type FS interface {
	ReadFS

	// OpenFile opens a file with os-style flags (os.O_RDONLY, os.O_RDWR,
	// os.O_CREATE, os.O_TRUNC, ...). perm is used when the file is created.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// MkdirAll creates a directory along with any missing parents.
	MkdirAll(name string, perm fs.FileMode) error

	// Remove removes the named file or empty directory.
	Remove(name string) error

	// Type returns the kind of backing store.
	Type() FSType
}

// Dirs exposes the host's well-known directories and the working directory.
// Returned paths use '/' separators but are not otherwise normalized.
type Dirs interface {
	// CurrentDir returns the working directory relative names resolve against.
	CurrentDir() (string, error)

	// SetCurrentDir changes the working directory.
	SetCurrentDir(dir string) error

	// ExecutablePath returns the full path of the running program.
	ExecutablePath() (string, error)

	// UserDocumentsDir returns the user's documents directory.
	UserDocumentsDir() (string, error)

	// AppPreferencesDir returns the per-application preferences directory
	// for the given organisation and application names.
	AppPreferencesDir(org, app string) (string, error)
}

// Platform combines file primitives and directory queries.
type Platform interface {
	FS
	Dirs
}
