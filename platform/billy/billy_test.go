package billy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/resfs/platform"
	"github.com/jmgilman/go/resfs/platform/platformtest"
)

// TestLocalFS_Suite runs the conformance suite against a temp directory.
func TestLocalFS_Suite(t *testing.T) {
	platformtest.TestSuite(t, func(t *testing.T) platform.Platform {
		dir := t.TempDir()
		return NewLocal(
			WithWorkingDir(dir),
			WithHomeDir(filepath.Join(dir, "home")),
			WithConfigDir(filepath.Join(dir, "config")),
		)
	})
}

// TestMemoryFS_Suite runs the conformance suite against an empty memfs.
func TestMemoryFS_Suite(t *testing.T) {
	platformtest.TestSuite(t, func(t *testing.T) platform.Platform {
		return NewMemory()
	})
}

// TestLocalFS_Constructor verifies NewLocal creates a valid filesystem.
func TestLocalFS_Constructor(t *testing.T) {
	lfs := NewLocal()
	if lfs == nil {
		t.Fatal("NewLocal() returned nil")
	}
	if lfs.bfs == nil {
		t.Error("NewLocal() bfs field is nil")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Skipf("os.Getwd(): %v", err)
	}
	if cwd, _ := lfs.CurrentDir(); cwd != filepath.ToSlash(wd) {
		t.Errorf("CurrentDir() = %q, want process working directory %q", cwd, wd)
	}
}

// TestMemoryFS_Defaults verifies the virtual well-known directories.
func TestMemoryFS_Defaults(t *testing.T) {
	mfs := NewMemory()

	if cwd, _ := mfs.CurrentDir(); cwd != "/" {
		t.Errorf("CurrentDir() = %q, want %q", cwd, "/")
	}
	if exe, _ := mfs.ExecutablePath(); exe != "/bin/app" {
		t.Errorf("ExecutablePath() = %q, want %q", exe, "/bin/app")
	}
	if docs, _ := mfs.UserDocumentsDir(); docs != "/home/Documents" {
		t.Errorf("UserDocumentsDir() = %q, want %q", docs, "/home/Documents")
	}
	if prefs, _ := mfs.AppPreferencesDir("Org", "App"); prefs != "/home/.config/Org/App" {
		t.Errorf("AppPreferencesDir() = %q, want %q", prefs, "/home/.config/Org/App")
	}
}

// TestMemoryFS_Options verifies options override the defaults.
func TestMemoryFS_Options(t *testing.T) {
	mfs := NewMemory(
		WithWorkingDir("/game/"),
		WithHomeDir("/users/me"),
		WithConfigDir("/etc/prefs"),
		WithExecutable("/game/bin/viewer"),
	)

	if cwd, _ := mfs.CurrentDir(); cwd != "/game" {
		t.Errorf("CurrentDir() = %q, want %q", cwd, "/game")
	}
	if exe, _ := mfs.ExecutablePath(); exe != "/game/bin/viewer" {
		t.Errorf("ExecutablePath() = %q", exe)
	}
	if docs, _ := mfs.UserDocumentsDir(); docs != "/users/me/Documents" {
		t.Errorf("UserDocumentsDir() = %q", docs)
	}
	if prefs, _ := mfs.AppPreferencesDir("A", "B"); prefs != "/etc/prefs/A/B" {
		t.Errorf("AppPreferencesDir() = %q", prefs)
	}
}

// TestLocalFS_Type verifies LocalFS returns FSTypeLocal.
func TestLocalFS_Type(t *testing.T) {
	if got := NewLocal().Type(); got != platform.FSTypeLocal {
		t.Errorf("LocalFS.Type() = %v, want %v", got, platform.FSTypeLocal)
	}
}

// TestMemoryFS_Type verifies MemoryFS returns FSTypeMemory.
func TestMemoryFS_Type(t *testing.T) {
	if got := NewMemory().Type(); got != platform.FSTypeMemory {
		t.Errorf("MemoryFS.Type() = %v, want %v", got, platform.FSTypeMemory)
	}
}

// TestMemoryFS_Unwrap verifies Unwrap exposes the same tree.
func TestMemoryFS_Unwrap(t *testing.T) {
	mfs := NewMemory()
	f, err := mfs.Unwrap().Create("/direct.txt")
	if err != nil {
		t.Fatalf("Create() through Unwrap: %v", err)
	}
	_ = f.Close()

	if ok, _ := mfs.Exists("direct.txt"); !ok {
		t.Error("Exists() = false for file created through Unwrap")
	}
}

// TestLocalFS_DoesNotChangeProcessDir verifies SetCurrentDir is provider-local.
func TestLocalFS_DoesNotChangeProcessDir(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Skipf("os.Getwd(): %v", err)
	}

	lfs := NewLocal()
	if err := lfs.SetCurrentDir(t.TempDir()); err != nil {
		t.Fatalf("SetCurrentDir(): %v", err)
	}

	after, _ := os.Getwd()
	if before != after {
		t.Errorf("process working directory changed from %q to %q", before, after)
	}
}

// TestSetCurrentDir_NotDir verifies the error for a non-directory target.
func TestSetCurrentDir_NotDir(t *testing.T) {
	mfs := NewMemory()
	f, err := mfs.OpenFile("file", os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(): %v", err)
	}
	_ = f.Close()

	err = mfs.SetCurrentDir("file")
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("SetCurrentDir(file) = %v, want *fs.PathError", err)
	}
	if pathErr.Path != "/file" {
		t.Errorf("PathError.Path = %q, want %q", pathErr.Path, "/file")
	}
}

// TestClean verifies name resolution against the working directory.
func TestClean(t *testing.T) {
	tests := []struct {
		cwd, name, want string
	}{
		{"/", "a.txt", "/a.txt"},
		{"/game", "Textures/a.png", "/game/Textures/a.png"},
		{"/game", "/abs/b.png", "/abs/b.png"},
		{"/game/sub", "../x", "/game/x"},
		{"/game", "./y/", "/game/y"},
		{"/game", "", "/game"},
	}

	for _, tt := range tests {
		if got := clean(tt.cwd, tt.name); got != tt.want {
			t.Errorf("clean(%q, %q) = %q, want %q", tt.cwd, tt.name, got, tt.want)
		}
	}
}
