package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zocbuild/zocbuild/internal/cli"
	"github.com/zocbuild/zocbuild/pkg/zocbuild"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(zocbuild.ExitPanic)
		}
	}()

	if os.Getenv("ZOCBUILD_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(zocbuild.ExitCodeForError(err))
	}
}
