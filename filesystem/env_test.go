package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/platform/billy"
	"github.com/jmgilman/go/resfs/process"
	"github.com/jmgilman/go/resfs/roots"
)

func TestSystemRun_Fake(t *testing.T) {
	runner := &fakeRunner{result: &process.Result{Stdout: "compiled\n", ExitCode: 0}}
	fsys := newMemoryFS(t, WithRunner(runner))

	code, err := fsys.SystemRun(context.Background(), "/tools/fxc", []string{"-T", "ps_6_0"}, "logs/fxc.txt")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "/tools/fxc", runner.program)
	assert.Equal(t, []string{"-T", "ps_6_0"}, runner.args)

	data, err := fsys.Platform().ReadFile("logs/fxc.txt")
	require.NoError(t, err)
	assert.Equal(t, "compiled\n", string(data))
}

func TestSystemRun_NonZeroExit(t *testing.T) {
	runner := &fakeRunner{
		result: &process.Result{Stdout: "partial", ExitCode: 2},
		err:    &process.RunError{Command: []string{"tool"}, ExitCode: 2},
	}
	fsys := newMemoryFS(t, WithRunner(runner))

	code, err := fsys.SystemRun(context.Background(), "tool", nil, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, 2, code)

	data, err := fsys.Platform().ReadFile("out.txt")
	require.NoError(t, err)
	assert.Equal(t, "partial", string(data))
}

func TestSystemRun_CannotStart(t *testing.T) {
	runner := &fakeRunner{
		result: &process.Result{ExitCode: -1},
		err:    &process.RunError{Command: []string{"missing"}, ExitCode: -1, Err: os.ErrNotExist},
	}
	fsys := newMemoryFS(t, WithRunner(runner))

	code, err := fsys.SystemRun(context.Background(), "missing", nil, "")
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
}

func TestSystemRun_NilResult(t *testing.T) {
	runner := &fakeRunner{err: &process.RunError{Command: []string{"x"}, ExitCode: -1}}
	fsys := newMemoryFS(t, WithRunner(runner))

	code, err := fsys.SystemRun(context.Background(), "x", nil, "out.txt")
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.False(t, fsys.FileExists("out.txt", roots.OtherFiles))
}

func TestSystemRun_Local(t *testing.T) {
	dir := t.TempDir()
	fsys := New(billy.NewLocal(billy.WithWorkingDir(dir)))
	out := filepath.ToSlash(filepath.Join(dir, "stdout.txt"))

	code, err := fsys.SystemRun(context.Background(), "sh", []string{"-c", "echo hello; exit 4"}, out)
	require.NoError(t, err)
	assert.Equal(t, 4, code)

	data, err := os.ReadFile(filepath.Join(dir, "stdout.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestSystemRun_LocalMissingProgram(t *testing.T) {
	fsys := New(billy.NewLocal(billy.WithWorkingDir(t.TempDir())))

	code, err := fsys.SystemRun(context.Background(), "resfs-no-such-program-xyz", nil, "")
	require.Error(t, err)
	assert.Equal(t, -1, code)
}
