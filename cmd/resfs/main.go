package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/jmgilman/go/resfs/internal/cli"
)

const exitPanic = 4

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(exitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
