package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/romanpravda/scormpack/internal/cli"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(scormpack.ExitPanic)
		}
	}()

	if os.Getenv("SCORMPACK_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(scormpack.ExitCodeForError(err))
	}
}
