package platformtest

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/jmgilman/go/resfs/platform"
)

// TestHandles tests the handle primitives: open, read, write, seek, tell,
// flush and close.
func TestHandles(t *testing.T, p platform.Platform) {
	t.Run("WriteThenRead", func(t *testing.T) {
		testWriteThenRead(t, p)
	})
	t.Run("SeekAndTell", func(t *testing.T) {
		testSeekAndTell(t, p)
	})
	t.Run("MixedReadWrite", func(t *testing.T) {
		testMixedReadWrite(t, p)
	})
	t.Run("Truncate", func(t *testing.T) {
		testTruncate(t, p)
	})
	t.Run("ReadAtEOF", func(t *testing.T) {
		testReadAtEOF(t, p)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testOpenNotExist(t, p)
	})
	t.Run("Name", func(t *testing.T) {
		testName(t, p)
	})
}

// writeFile creates name with data, failing the test on error.
func writeFile(t *testing.T, p platform.FS, name string, data []byte) {
	t.Helper()
	f, err := p.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q): setup failed: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("Write(%q): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%q): setup failed: %v", name, err)
	}
}

func closeFile(t *testing.T, f platform.File) {
	t.Helper()
	if err := f.Close(); err != nil {
		t.Errorf("Close(): got error %v", err)
	}
}

func testWriteThenRead(t *testing.T, p platform.Platform) {
	content := []byte("hello world")
	writeFile(t, p, "handle.bin", content)

	f, err := p.OpenFile("handle.bin", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(O_RDONLY): got error %v", err)
	}
	defer closeFile(t, f)

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("ReadAll(): got %q, want %q", got, content)
	}
}

func testSeekAndTell(t *testing.T, p platform.Platform) {
	writeFile(t, p, "seek.bin", []byte("hello world"))

	f, err := p.OpenFile("seek.bin", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(): got error %v", err)
	}
	defer closeFile(t, f)

	pos, err := f.Seek(6, io.SeekStart)
	if err != nil || pos != 6 {
		t.Fatalf("Seek(6, SeekStart): got (%d, %v), want (6, nil)", pos, err)
	}

	buf := make([]byte, 5)
	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatalf("ReadFull(): got error %v", err)
	}
	if string(buf) != "world" {
		t.Errorf("ReadFull(): got %q, want %q", buf, "world")
	}

	if pos, _ := f.Seek(0, io.SeekCurrent); pos != 11 {
		t.Errorf("Seek(0, SeekCurrent): got %d, want 11", pos)
	}
	if pos, _ := f.Seek(0, io.SeekEnd); pos != 11 {
		t.Errorf("Seek(0, SeekEnd): got %d, want 11", pos)
	}
}

func testMixedReadWrite(t *testing.T, p platform.Platform) {
	f, err := p.OpenFile("mixed.bin", os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(O_RDWR|O_CREATE): got error %v", err)
	}
	defer closeFile(t, f)

	if _, err := f.Write([]byte("abcdef")); err != nil {
		t.Fatalf("Write(): got error %v", err)
	}
	if err := f.Sync(); err != nil {
		t.Errorf("Sync(): got error %v", err)
	}

	if _, err := f.Seek(3, io.SeekStart); err != nil {
		t.Fatalf("Seek(): got error %v", err)
	}
	if _, err := f.Write([]byte("XY")); err != nil {
		t.Fatalf("Write(): got error %v", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(): got error %v", err)
	}
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v", err)
	}
	if string(got) != "abcXYf" {
		t.Errorf("ReadAll(): got %q, want %q", got, "abcXYf")
	}
}

func testTruncate(t *testing.T, p platform.Platform) {
	writeFile(t, p, "trunc.bin", []byte("some old content"))
	writeFile(t, p, "trunc.bin", []byte("new"))

	data, err := p.ReadFile("trunc.bin")
	if err != nil {
		t.Fatalf("ReadFile(): got error %v", err)
	}
	if string(data) != "new" {
		t.Errorf("ReadFile(): got %q, want %q", data, "new")
	}
}

func testReadAtEOF(t *testing.T, p platform.Platform) {
	writeFile(t, p, "eof.bin", []byte("ab"))

	f, err := p.OpenFile("eof.bin", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(): got error %v", err)
	}
	defer closeFile(t, f)

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		t.Fatalf("Seek(): got error %v", err)
	}
	n, err := f.Read(make([]byte, 4))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() at end: got (%d, %v), want (0, EOF)", n, err)
	}
}

func testOpenNotExist(t *testing.T, p platform.Platform) {
	_, err := p.OpenFile("missing.bin", os.O_RDONLY, 0)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenFile(missing): got %v, want fs.ErrNotExist", err)
	}
}

func testName(t *testing.T, p platform.Platform) {
	writeFile(t, p, "named.bin", nil)

	f, err := p.OpenFile("named.bin", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(): got error %v", err)
	}
	defer closeFile(t, f)

	if !strings.HasSuffix(f.Name(), "/named.bin") {
		t.Errorf("Name(): got %q, want suffix %q", f.Name(), "/named.bin")
	}
}
