package engine

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashCleanup atomic.Pointer[func()]

// SetCrashCleanup registers the terminal restore run before a crash report
func SetCrashCleanup(fn func()) {
	if fn == nil {
		crashCleanup.Store(nil)
		return
	}
	crashCleanup.Store(&fn)
}

// HandleCrash restores the terminal, prints the stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashCleanup.Load(); fn != nil {
		(*fn)()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mMONODICE CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
