package process

import (
	"context"
	"io"
	"maps"
	"os"
	osexec "os/exec"
	"slices"
	"time"

	"github.com/jmgilman/go/resfs/logging"
)

// Result represents the result of a program run.
type Result struct {
	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured standard error.
	Stderr string

	// Combined is stdout and stderr interleaved in arrival order.
	Combined string

	// ExitCode is the exit code returned by the program.
	ExitCode int
}

// Runner runs external programs.
type Runner struct {
	dir        string
	env        map[string]string
	inheritEnv bool
	timeout    time.Duration
	stdout     io.Writer
	stderr     io.Writer
	log        *logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithDir sets the working directory of the program.
func WithDir(dir string) Option {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithEnv adds environment variables. Repeated options merge, later values win.
// Unless WithInheritEnv is also given, the program sees only these variables.
func WithEnv(env map[string]string) Option {
	return func(r *Runner) {
		if r.env == nil {
			r.env = make(map[string]string, len(env))
		}
		maps.Copy(r.env, env)
	}
}

// WithInheritEnv passes the parent's environment to the program. Variables
// set with WithEnv take precedence.
func WithInheritEnv() Option {
	return func(r *Runner) {
		r.inheritEnv = true
	}
}

// WithTimeout kills the program when it runs longer than d. Zero disables
// the timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithStdout streams standard output to w in addition to capturing it.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr streams standard error to w in addition to capturing it.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// New creates a Runner with the given options.
func New(opts ...Option) *Runner {
	r := &Runner{log: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// With returns a copy of r with opts applied on top of its settings.
func (r *Runner) With(opts ...Option) *Runner {
	clone := *r
	clone.env = maps.Clone(r.env)
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Run executes program with args and waits for it to finish.
//
// The Result is returned even when err is non-nil, so callers can inspect
// the output of a failed run.
func (r *Runner) Run(ctx context.Context, program string, args ...string) (*Result, error) {
	command := append([]string{program}, args...)
	if program == "" {
		return &Result{ExitCode: -1}, &RunError{
			Command:  command,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, program, args...)
	if r.dir != "" {
		cmd.Dir = r.dir
	}
	cmd.Env = r.environ()

	out := &capture{}
	cmd.Stdout = out.stream(&out.stdout, r.stdout)
	cmd.Stderr = out.stream(&out.stderr, r.stderr)

	r.log.Debug(ctx, "running program", "command", command, "dir", r.dir)
	err := cmd.Run()

	result := out.result(cmd.ProcessState.ExitCode())
	if err == nil {
		r.log.Debug(ctx, "program finished", "command", command, "exit_code", result.ExitCode)
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}
	r.log.Debug(ctx, "program failed", "command", command, "exit_code", result.ExitCode, "error", err)
	return result, &RunError{
		Command:  command,
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
		Err:      err,
	}
}

// environ builds the program environment. With neither WithInheritEnv nor
// WithEnv it returns nil, which os/exec treats as the parent's environment.
func (r *Runner) environ() []string {
	if !r.inheritEnv && len(r.env) == 0 {
		return nil
	}

	var env []string
	if r.inheritEnv {
		env = append(env, os.Environ()...)
	}
	for _, k := range slices.Sorted(maps.Keys(r.env)) {
		env = append(env, k+"="+r.env[k])
	}
	return env
}
