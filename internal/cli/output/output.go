// Package output centralizes console writes so commands and tests share
// one switchable destination.
package output

import (
	"fmt"
	"io"
	"os"
)

var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

// Info prints an informational message to the user.
func Info(format string, a ...interface{}) {
	fmt.Fprintf(Out, format, a...)
}

// Success prints a success message (keeps formatting consistent).
func Success(format string, a ...interface{}) {
	fmt.Fprintf(Out, format, a...)
}

// Warn prints a recoverable-problem message; the run continues.
func Warn(format string, a ...interface{}) {
	fmt.Fprintf(Out, format, a...)
}

// Error prints an error message to stderr.
func Error(format string, a ...interface{}) {
	fmt.Fprintf(ErrOut, format, a...)
}
