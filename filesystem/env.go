package filesystem

import (
	"context"

	"github.com/jmgilman/go/resfs/errors"
	"github.com/jmgilman/go/resfs/pathutil"
	"github.com/jmgilman/go/resfs/process"
	"github.com/jmgilman/go/resfs/stream"
)

// CurrentDir returns the working directory with a trailing slash.
func (fs *FileSystem) CurrentDir() (string, error) {
	dir, err := fs.platform.CurrentDir()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeIO, "failed to get current directory")
	}
	return pathutil.AddTrailingSlash(pathutil.Normalize(dir)), nil
}

// SetCurrentDir changes the working directory relative names resolve against.
func (fs *FileSystem) SetCurrentDir(dir string) error {
	p := pathutil.Normalize(dir)
	if err := fs.platform.SetCurrentDir(p); err != nil {
		return errors.FromFS(err, "set current directory", p)
	}
	return nil
}

// ProgramDir returns the directory containing the running executable, with
// a trailing slash.
func (fs *FileSystem) ProgramDir() (string, error) {
	exe, err := fs.platform.ExecutablePath()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeIO, "failed to get executable path")
	}
	return pathutil.Dir(pathutil.Normalize(exe)), nil
}

// UserDocumentsDir returns the user's documents directory with a trailing slash.
func (fs *FileSystem) UserDocumentsDir() (string, error) {
	dir, err := fs.platform.UserDocumentsDir()
	if err != nil {
		return "", errors.Wrap(err, errors.CodeIO, "failed to get user documents directory")
	}
	return pathutil.AddTrailingSlash(pathutil.Normalize(dir)), nil
}

// AppPreferencesDir returns the preferences directory for org and app with a
// trailing slash. The directory is not created.
func (fs *FileSystem) AppPreferencesDir(org, app string) (string, error) {
	if org == "" || app == "" {
		return "", errors.New(errors.CodeInvalidInput, "organisation and application names must not be empty")
	}
	dir, err := fs.platform.AppPreferencesDir(org, app)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeIO, "failed to get application preferences directory")
	}
	return pathutil.AddTrailingSlash(pathutil.Normalize(dir)), nil
}

// SystemRun runs program with args and returns its exit code.
//
// When stdoutPath is not empty, the program's standard output is written to
// that file, replacing any previous content; the file is written even when
// the program fails. A program that cannot be started yields -1 and an error.
// A program that runs but exits non-zero yields its exit code and a nil error.
func (fs *FileSystem) SystemRun(ctx context.Context, program string, args []string, stdoutPath string) (int, error) {
	log := fs.log.WithOperation("system_run")

	res, runErr := fs.runner.Run(ctx, pathutil.NativePath(program), args...)
	code := -1
	if res != nil {
		code = res.ExitCode
	}

	if stdoutPath != "" && res != nil {
		if err := fs.writeOutput(stdoutPath, res.Stdout); err != nil {
			return code, err
		}
	}

	if runErr != nil && code < 0 {
		log.Debug(ctx, "program could not run", "program", program, "error", runErr)
		return -1, process.AsPlatformError(runErr)
	}
	log.Debug(ctx, "program exited", "program", program, "exit_code", code)
	return code, nil
}

func (fs *FileSystem) writeOutput(name, data string) error {
	f, err := stream.OpenFile(fs.platform, pathutil.Normalize(name), stream.ModeWrite)
	if err != nil {
		return err
	}
	if err := stream.NewEncoder(f).WriteText(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
