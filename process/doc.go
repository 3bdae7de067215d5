// Package process runs external programs and captures their output.
//
// It wraps os/exec with a small, reusable Runner. Options given to New apply
// to every Run; Runners are immutable after creation and safe for concurrent
// use.
//
// # Basic Usage
//
//	r := process.New()
//	res, err := r.Run(ctx, "echo", "hello world")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Stdout) // "hello world\n"
//
// # Configuration
//
//	r := process.New(
//		process.WithDir("/game"),
//		process.WithInheritEnv(),
//		process.WithEnv(map[string]string{"SHADER_MODEL": "6_6"}),
//		process.WithTimeout(30*time.Second),
//	)
//
// Derive a variant with different settings using With:
//
//	verbose := r.With(process.WithStdout(os.Stdout))
//
// # Output
//
// Stdout and stderr are always captured into the Result. Writers given with
// WithStdout and WithStderr additionally receive the output as it is
// produced.
//
// # Errors
//
// A program that cannot be started, exits non-zero, or is killed returns a
// *RunError carrying the exit code and captured output. The exit code is -1
// when the program never ran.
package process
