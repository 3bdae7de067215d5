package process

import (
	"bytes"
	"io"
	"sync"
)

// capture records a program's output while optionally streaming it to a
// passthrough writer. Writes to combined are shared between stdout and
// stderr, so capture serialises them.
type capture struct {
	mu       sync.Mutex
	stdout   bytes.Buffer
	stderr   bytes.Buffer
	combined bytes.Buffer
}

// stream returns the writer for one output stream.
func (c *capture) stream(own *bytes.Buffer, passthrough io.Writer) io.Writer {
	return &streamWriter{c: c, own: own, passthrough: passthrough}
}

func (c *capture) result(exitCode int) *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &Result{
		Stdout:   c.stdout.String(),
		Stderr:   c.stderr.String(),
		Combined: c.combined.String(),
		ExitCode: exitCode,
	}
}

type streamWriter struct {
	c           *capture
	own         *bytes.Buffer
	passthrough io.Writer
}

// Write records p and forwards it to the passthrough writer, if any.
func (w *streamWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	w.own.Write(p)
	w.c.combined.Write(p)
	w.c.mu.Unlock()

	if w.passthrough == nil {
		return len(p), nil
	}
	n, err := w.passthrough.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	return len(p), nil
}
