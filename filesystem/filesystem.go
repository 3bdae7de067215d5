package filesystem

import (
	"context"
	"encoding/hex"
	"io"
	"os"
	"slices"
	"time"

	"github.com/zeebo/blake3"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/logging"
	"github.com/jmgilman/go/resfs/pathutil"
	"github.com/jmgilman/go/resfs/platform"
	"github.com/jmgilman/go/resfs/process"
	"github.com/jmgilman/go/resfs/roots"
	"github.com/jmgilman/go/resfs/stream"
)

// Runner runs external programs for SystemRun.
type Runner interface {
	Run(ctx context.Context, program string, args ...string) (*process.Result, error)
}

// FileSystem is the high-level entry point tying a platform, a root table
// and a process runner together.
type FileSystem struct {
	platform platform.Platform
	roots    *roots.Table
	runner   Runner
	log      *logging.Logger
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithRoots sets the root table. The default is roots.New().
func WithRoots(t *roots.Table) Option {
	return func(fs *FileSystem) {
		fs.roots = t
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(fs *FileSystem) {
		fs.log = l
	}
}

// WithRunner sets the runner used by SystemRun. The default is process.New().
func WithRunner(r Runner) Option {
	return func(fs *FileSystem) {
		fs.runner = r
	}
}

// New returns a FileSystem over p.
func New(p platform.Platform, opts ...Option) *FileSystem {
	fs := &FileSystem{platform: p}
	for _, opt := range opts {
		opt(fs)
	}
	if fs.roots == nil {
		fs.roots = roots.New()
	}
	if fs.log == nil {
		fs.log = logging.NewNop()
	}
	if fs.runner == nil {
		fs.runner = process.New(process.WithLogger(fs.log))
	}
	return fs
}

// Platform returns the underlying platform.
func (fs *FileSystem) Platform() platform.Platform {
	return fs.platform
}

// Roots returns the root table used for resolution.
func (fs *FileSystem) Roots() *roots.Table {
	return fs.roots
}

// SetRootPath overrides the base directory of cat.
func (fs *FileSystem) SetRootPath(cat roots.Category, dir string) error {
	if err := fs.roots.SetRootPath(cat, dir); err != nil {
		return err
	}
	fs.log.WithCategory(cat.String()).Debug(context.Background(), "root overridden", "dir", dir)
	return nil
}

// ClearModifiedRootPaths reverts every category to its default directory.
func (fs *FileSystem) ClearModifiedRootPaths() {
	fs.roots.ClearModifiedRootPaths()
	fs.log.Debug(context.Background(), "root overrides cleared")
}

// FixPath resolves name within cat.
func (fs *FileSystem) FixPath(name string, cat roots.Category) (string, error) {
	return fs.roots.FixPath(name, cat)
}

// Open resolves name within cat and opens it as a stream.
func (fs *FileSystem) Open(name string, cat roots.Category, mode stream.Mode, opts ...stream.FileOption) (*stream.File, error) {
	p, err := fs.roots.FixPath(name, cat)
	if err != nil {
		return nil, err
	}

	opts = append([]stream.FileOption{stream.WithLogger(fs.log.WithOperation("stream"))}, opts...)
	f, err := stream.OpenFile(fs.platform, p, mode, opts...)
	if err != nil {
		return nil, errors.WithContext(err, "category", cat.String())
	}
	return f, nil
}

// FileExists reports whether name exists within cat. Failures, including an
// unknown category, report false.
func (fs *FileSystem) FileExists(name string, cat roots.Category) bool {
	p, err := fs.roots.FixPath(name, cat)
	if err != nil {
		fs.log.Debug(context.Background(), "file exists check failed", "name", name, "error", err)
		return false
	}

	info, err := fs.platform.Stat(p)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fs.log.WithPath(p).Debug(context.Background(), "stat failed", "error", err)
		}
		return false
	}
	return !info.IsDir()
}

// FileSize returns the size in bytes of name within cat.
func (fs *FileSystem) FileSize(name string, cat roots.Category) (int64, error) {
	p, err := fs.roots.FixPath(name, cat)
	if err != nil {
		return 0, err
	}

	info, err := fs.platform.Stat(p)
	if err != nil {
		return 0, errors.FromFS(err, "stat", p)
	}
	if info.IsDir() {
		return 0, errors.WithContext(
			errors.New(errors.CodeInvalidInput, "path is a directory"),
			"path", p,
		)
	}
	return info.Size(), nil
}

// LastModifiedTime returns the modification time of name, which is used as
// given apart from normalization. The zero time is returned when the query
// fails.
func (fs *FileSystem) LastModifiedTime(name string) time.Time {
	p := pathutil.Normalize(name)
	info, err := fs.platform.Stat(p)
	if err != nil {
		fs.log.WithPath(p).Debug(context.Background(), "modification time unavailable", "error", err)
		return time.Time{}
	}
	return info.ModTime()
}

// Fingerprint returns the hex BLAKE3 digest of the content of name within cat.
func (fs *FileSystem) Fingerprint(name string, cat roots.Category) (string, error) {
	f, err := fs.Open(name, cat, stream.ModeReadBinary)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := blake3.New()
	if _, err := io.Copy(h, stream.ReadOnly(f)); err != nil {
		return "", errors.Wrapf(err, errors.CodeIO, "failed to hash %s", f.Name())
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DirExists reports whether dir exists and is a directory.
func (fs *FileSystem) DirExists(dir string) bool {
	info, err := fs.platform.Stat(pathutil.Normalize(dir))
	return err == nil && info.IsDir()
}

// CreateDir creates dir along with any missing parents. An existing
// directory is not an error.
func (fs *FileSystem) CreateDir(dir string) error {
	p := pathutil.Normalize(dir)
	if err := fs.platform.MkdirAll(p, 0o755); err != nil {
		return errors.FromFS(err, "create directory", p)
	}
	return nil
}

// Delete removes the file or empty directory name.
func (fs *FileSystem) Delete(name string) error {
	p := pathutil.Normalize(name)
	if err := fs.platform.Remove(p); err != nil {
		return errors.FromFS(err, "delete", p)
	}
	fs.log.WithPath(p).Debug(context.Background(), "deleted")
	return nil
}

// FilesWithExtension lists the regular files directly inside dir whose
// extension matches ext, case-insensitively. ext may include the leading
// dot. Results are full paths sorted by name.
func (fs *FileSystem) FilesWithExtension(dir, ext string) ([]string, error) {
	p := pathutil.Normalize(dir)
	entries, err := fs.platform.ReadDir(p)
	if err != nil {
		return nil, errors.FromFS(err, "list directory", p)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !pathutil.HasExtension(e.Name(), ext) {
			continue
		}
		files = append(files, pathutil.Join(p, e.Name()))
	}
	slices.Sort(files)
	return files, nil
}
