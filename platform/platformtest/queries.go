package platformtest

import (
	"errors"
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/jmgilman/go/resfs/platform"
)

// TestReadFS tests Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, p platform.Platform) {
	if err := p.MkdirAll("assets/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(assets/sub): setup failed: %v", err)
	}
	writeFile(t, p, "assets/b.png", []byte("png"))
	writeFile(t, p, "assets/a.txt", []byte("text content"))

	t.Run("StatFile", func(t *testing.T) {
		info, err := p.Stat("assets/a.txt")
		if err != nil {
			t.Fatalf("Stat(): got error %v", err)
		}
		if info.IsDir() {
			t.Error("Stat(): IsDir() = true, want false")
		}
		if info.Size() != int64(len("text content")) {
			t.Errorf("Stat(): Size() = %d, want %d", info.Size(), len("text content"))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := p.Stat("assets")
		if err != nil {
			t.Fatalf("Stat(): got error %v", err)
		}
		if !info.IsDir() {
			t.Error("Stat(): IsDir() = false, want true")
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		if _, err := p.Stat("assets/none"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing): got %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		entries, err := p.ReadDir("assets")
		if err != nil {
			t.Fatalf("ReadDir(): got error %v", err)
		}
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		if got, want := strings.Join(names, ","), "a.txt,b.png,sub"; got != want {
			t.Errorf("ReadDir(): got %s, want %s", got, want)
		}
		for _, e := range entries {
			if e.Name() == "sub" && !e.IsDir() {
				t.Error("ReadDir(): sub IsDir() = false, want true")
			}
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := p.ReadFile("assets/a.txt")
		if err != nil {
			t.Fatalf("ReadFile(): got error %v", err)
		}
		if string(data) != "text content" {
			t.Errorf("ReadFile(): got %q", data)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			"assets":       true,
			"assets/a.txt": true,
			"assets/none":  false,
		} {
			got, err := p.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v", name, err)
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", name, got, want)
			}
		}
	})
}

// TestManage tests MkdirAll and Remove.
func TestManage(t *testing.T, p platform.Platform) {
	t.Run("MkdirAllIdempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := p.MkdirAll("x/y/z", 0o755); err != nil {
				t.Fatalf("MkdirAll() call %d: got error %v", i+1, err)
			}
		}
		if ok, _ := p.Exists("x/y/z"); !ok {
			t.Error("Exists(x/y/z): got false after MkdirAll")
		}
	})

	t.Run("RemoveFile", func(t *testing.T) {
		writeFile(t, p, "gone.txt", []byte("x"))
		if err := p.Remove("gone.txt"); err != nil {
			t.Fatalf("Remove(): got error %v", err)
		}
		if ok, _ := p.Exists("gone.txt"); ok {
			t.Error("Exists(): got true after Remove")
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		if err := p.Remove("never.txt"); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(missing): got %v, want fs.ErrNotExist", err)
		}
	})
}

// TestDirs tests the working directory and well-known directory queries.
func TestDirs(t *testing.T, p platform.Platform) {
	start, err := p.CurrentDir()
	if err != nil {
		t.Fatalf("CurrentDir(): got error %v", err)
	}
	if !path.IsAbs(start) {
		t.Fatalf("CurrentDir(): got %q, want an absolute path", start)
	}

	t.Run("SetCurrentDir", func(t *testing.T) {
		if err := p.MkdirAll("work", 0o755); err != nil {
			t.Fatalf("MkdirAll(): setup failed: %v", err)
		}
		if err := p.SetCurrentDir("work"); err != nil {
			t.Fatalf("SetCurrentDir(): got error %v", err)
		}
		defer func() {
			if err := p.SetCurrentDir(start); err != nil {
				t.Errorf("SetCurrentDir(restore): got error %v", err)
			}
		}()

		cwd, _ := p.CurrentDir()
		if want := path.Join(start, "work"); cwd != want {
			t.Errorf("CurrentDir(): got %q, want %q", cwd, want)
		}

		writeFile(t, p, "inside.txt", []byte("x"))
		if ok, _ := p.Exists(path.Join(start, "work", "inside.txt")); !ok {
			t.Error("relative name did not resolve against the new working directory")
		}
	})

	t.Run("SetCurrentDirInvalid", func(t *testing.T) {
		if err := p.SetCurrentDir("no-such-dir"); err == nil {
			t.Error("SetCurrentDir(missing): got nil error")
		}
		writeFile(t, p, "plain.txt", nil)
		if err := p.SetCurrentDir("plain.txt"); err == nil {
			t.Error("SetCurrentDir(file): got nil error")
		}
		if cwd, _ := p.CurrentDir(); cwd != start {
			t.Errorf("CurrentDir() after failed change: got %q, want %q", cwd, start)
		}
	})

	t.Run("WellKnown", func(t *testing.T) {
		if exe, err := p.ExecutablePath(); err != nil || exe == "" {
			t.Errorf("ExecutablePath(): got (%q, %v)", exe, err)
		}
		if docs, err := p.UserDocumentsDir(); err != nil || !strings.HasSuffix(docs, "/Documents") {
			t.Errorf("UserDocumentsDir(): got (%q, %v)", docs, err)
		}
		if prefs, err := p.AppPreferencesDir("Acme", "Viewer"); err != nil || !strings.HasSuffix(prefs, "/Acme/Viewer") {
			t.Errorf("AppPreferencesDir(): got (%q, %v)", prefs, err)
		}
	})
}
