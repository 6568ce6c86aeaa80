// Package fatal is the compiler's single abort chokepoint: every place
// that used to call os.Exit directly goes through Exit/Exitf/Abort
// instead, so there is exactly one place that decides how a fatal
// message is colored and exactly one pair of exit codes for "the
// compiler gave up".
package fatal

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Code is the exit status for an ordinary driver-level failure (a file
// that can't be read, a bad config), the same status the teacher's CLI
// uses for its own os.Exit(1) call sites.
const Code = 1

// InternalCode is the exit status for Abort/Abortf: an internal
// invariant violation rather than something the user did wrong.
const InternalCode = 2

var errorLabel = color.New(color.Bold, color.FgRed).SprintFunc()

// Exit prints msg to stderr, prefixed the way the teacher's CLI prefixes
// its own fatal errors, then terminates the process with Code.
func Exit(msg string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", errorLabel("Error"), msg)
	os.Exit(Code)
}

// Exitf formats a message and aborts the same way Exit does.
func Exitf(format string, args ...interface{}) {
	Exit(fmt.Sprintf(format, args...))
}

// Abort prints msg framed as an internal error and terminates the
// process with InternalCode. Call this only for invariant violations
// the compiler itself guarantees can't happen (a nil the ownership
// model promises is non-nil, an exhaustive type switch missing a
// case) — never for ordinary user-facing failures.
func Abort(msg string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", errorLabel("Internal error"), msg)
	os.Exit(InternalCode)
}

// Abortf formats a message and aborts the same way Abort does.
func Abortf(format string, args ...interface{}) {
	Abort(fmt.Sprintf(format, args...))
}
