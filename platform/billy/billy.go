package billy

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/resfs/platform"
)

var errNotDir = errors.New("not a directory")

// LocalFS wraps billy's osfs for local disk access.
// Relative names resolve against the working directory tracked by the
// LocalFS itself; the process working directory is never changed.
type LocalFS struct {
	provider
}

// MemoryFS wraps billy's memfs for in-memory storage.
// Its well-known directories are virtual paths chosen by options.
type MemoryFS struct {
	provider
}

// Option configures provider creation.
type Option func(*config)

type config struct {
	workDir    string
	homeDir    string
	configDir  string
	executable string
}

// WithWorkingDir sets the initial working directory.
func WithWorkingDir(dir string) Option {
	return func(c *config) {
		c.workDir = dir
	}
}

// WithHomeDir sets the home directory used to derive the documents directory.
func WithHomeDir(dir string) Option {
	return func(c *config) {
		c.homeDir = dir
	}
}

// WithConfigDir sets the base directory for application preferences.
func WithConfigDir(dir string) Option {
	return func(c *config) {
		c.configDir = dir
	}
}

// WithExecutable sets the path reported by ExecutablePath.
func WithExecutable(p string) Option {
	return func(c *config) {
		c.executable = p
	}
}

// NewLocal creates a go-billy-backed local filesystem rooted at "/".
// The working directory defaults to the process working directory.
func NewLocal(opts ...Option) *LocalFS {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.workDir = wd
		} else {
			cfg.workDir = "/"
		}
	}

	lfs := &LocalFS{}
	lfs.init(osfs.New("/"), cfg)
	return lfs
}

// NewMemory creates an empty go-billy-backed in-memory filesystem.
// The working directory is created if missing.
// Unless overridden, the working directory is "/", the home directory is
// "/home", preferences live under "/home/.config", and the executable is
// "/bin/app".
func NewMemory(opts ...Option) *MemoryFS {
	cfg := &config{
		workDir:    "/",
		homeDir:    "/home",
		configDir:  "/home/.config",
		executable: "/bin/app",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	mfs := &MemoryFS{}
	mfs.init(memfs.New(), cfg)
	// The in-memory tree starts empty; the working directory must exist.
	_ = mfs.bfs.MkdirAll(mfs.cwd, 0o755)
	return mfs
}

// Type returns FSTypeLocal.
func (lfs *LocalFS) Type() platform.FSType {
	return platform.FSTypeLocal
}

// Type returns FSTypeMemory.
func (mfs *MemoryFS) Type() platform.FSType {
	return platform.FSTypeMemory
}

// provider holds the behaviour shared by LocalFS and MemoryFS.
type provider struct {
	bfs billy.Filesystem
	cfg config

	mu  sync.RWMutex
	cwd string
}

func (p *provider) init(bfs billy.Filesystem, cfg *config) {
	p.bfs = bfs
	p.cfg = *cfg
	p.cwd = clean("/", cfg.workDir)
}

// Unwrap returns the underlying billy.Filesystem.
func (p *provider) Unwrap() billy.Filesystem {
	return p.bfs
}

// clean converts name to an absolute slash path, resolving relative names against cwd.
func clean(cwd, name string) string {
	name = filepath.ToSlash(name)
	if !path.IsAbs(name) {
		name = path.Join(cwd, name)
	}
	return path.Clean(name)
}

func (p *provider) resolve(name string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clean(p.cwd, name)
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Stat returns file metadata for the named file.
func (p *provider) Stat(name string) (fs.FileInfo, error) {
	return p.bfs.Stat(p.resolve(name))
}

// ReadDir returns the entries of the named directory sorted by name.
func (p *provider) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := p.bfs.ReadDir(p.resolve(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// ReadFile reads the whole named file.
func (p *provider) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(p.bfs, p.resolve(name))
}

// Exists reports whether the named file or directory exists.
func (p *provider) Exists(name string) (bool, error) {
	_, err := p.bfs.Stat(p.resolve(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// OpenFile opens a file with the specified flags and permissions.
func (p *provider) OpenFile(name string, flag int, perm fs.FileMode) (platform.File, error) {
	name = p.resolve(name)
	f, err := p.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &File{file: f, name: name}, nil
}

// MkdirAll creates a directory named name, along with any necessary parents.
func (p *provider) MkdirAll(name string, perm fs.FileMode) error {
	return p.bfs.MkdirAll(p.resolve(name), perm)
}

// Remove removes the named file or empty directory.
func (p *provider) Remove(name string) error {
	return p.bfs.Remove(p.resolve(name))
}

// CurrentDir returns the tracked working directory.
func (p *provider) CurrentDir() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cwd, nil
}

// SetCurrentDir changes the tracked working directory. The target must be an
// existing directory.
func (p *provider) SetCurrentDir(dir string) error {
	resolved := p.resolve(dir)
	info, err := p.bfs.Stat(resolved)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: resolved, Err: errNotDir}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cwd = resolved
	return nil
}

// ExecutablePath returns the configured executable, or the running program's path.
func (p *provider) ExecutablePath() (string, error) {
	if p.cfg.executable != "" {
		return filepath.ToSlash(p.cfg.executable), nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(exe), nil
}

// UserDocumentsDir returns <home>/Documents.
func (p *provider) UserDocumentsDir() (string, error) {
	home := p.cfg.homeDir
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return "", err
		}
	}
	return path.Join(filepath.ToSlash(home), "Documents"), nil
}

// AppPreferencesDir returns <config>/<org>/<app>. The directory is not created.
func (p *provider) AppPreferencesDir(org, app string) (string, error) {
	base := p.cfg.configDir
	if base == "" {
		var err error
		if base, err = os.UserConfigDir(); err != nil {
			return "", err
		}
	}
	return path.Join(filepath.ToSlash(base), org, app), nil
}

// Compile-time interface checks.
var (
	_ platform.Platform = (*LocalFS)(nil)
	_ platform.Platform = (*MemoryFS)(nil)
)
