package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashScreen atomic.Pointer[Screen]

// RegisterCrashScreen sets the screen HandleCrash restores, nil clears it
func RegisterCrashScreen(s *Screen) {
	crashScreen.Store(s)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state before writing to it
	if s := crashScreen.Load(); s != nil {
		s.Fini()
	}

	os.Stdout.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
