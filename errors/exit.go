package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// errPrefix is written before the error chain, followed by ": ". Empty by default,
	// so a failing program writes exactly PrintErrorChain of its error.
	errPrefix = ""

	// errOutput is the writer used by Main, CheckErr and Exitf, defaulting to os.Stderr.
	errOutput io.Writer = os.Stderr

	// exitHook is called before the program exits through Exit, Exitf, CheckErr or Main.
	exitHook ExitHook = nil

	// osExit terminates the process. Tests replace it with ReplaceExit.
	osExit = os.Exit
)

// MainResult is the outcome of a program body run by Main: nil on success,
// otherwise the error that made the program fail.
type MainResult = error

// ExitHook is called with the exit code, the text written to the error output
// and the trace of the failing error just before the program exits.
type ExitHook func(code int, msg string, tracer Tracer)

// SetErrPrefix changes the prefix written before a reported error chain.
func SetErrPrefix(prefix string) {
	errPrefix = prefix
}

// SetErrPrefixf sets the prefix written before a reported error chain with formatted arguments.
func SetErrPrefixf(s string, args ...any) {
	errPrefix = fmt.Sprintf(s, args...)
}

// SetErrOutput sets the writer failures are reported to.
func SetErrOutput(writer io.Writer) {
	errOutput = writer
}

// SetExitHook sets a hook called before the program exits. A nil hook removes it.
func SetExitHook(hook ExitHook) {
	exitHook = hook
}

// SetExit sets the function used to terminate the process. nil restores os.Exit.
func SetExit(exit func(code int)) {
	if exit == nil {
		exit = os.Exit
	}
	osExit = exit
}

// ReplaceExit sets the function used to terminate the process and returns a function
// restoring the previous one:
//
//	defer errors.ReplaceExit(func(code int) { got = code })()
func ReplaceExit(exit func(code int)) func() {
	previous := osExit
	SetExit(exit)
	return func() {
		osExit = previous
	}
}

// Main runs the body of a program and terminates the process with its outcome.
// On success it exits with code 0 and writes nothing. On failure the complete
// cause chain of the error is written to the error output and the process exits
// with code 1.
//
//	func main() {
//		errors.Main(run)
//	}
func Main(run func() MainResult) {
	if err := run(); err != nil {
		CheckErr(err)
		return
	}
	Exit(0)
}

// Report writes the failure held by result to w as its complete cause chain and
// returns the exit code for it. A nil result writes nothing and returns 0.
func Report(w io.Writer, result MainResult) int {
	if result == nil {
		return 0
	}
	_, _ = io.WriteString(w, render(result))
	return 1
}

// render returns the text reported for err: the prefix and the multi-line chain.
func render(err error) string {
	chain := PrintErrorChain(err)
	var sb strings.Builder
	sb.Grow(len(errPrefix) + 2 + len(chain) + 1)
	if errPrefix != "" {
		sb.WriteString(errPrefix)
		sb.WriteString(": ")
	}
	sb.WriteString(chain)
	sb.WriteByte('\n')
	return sb.String()
}

// CheckErr reports err to the error output and exits the program with code 1.
// It does nothing if err is nil.
func CheckErr(err error) {
	if err == nil {
		return
	}
	msg := render(err)
	_, _ = io.WriteString(errOutput, msg)
	if exitHook != nil {
		exitHook(1, msg, traceOf(err))
	}
	osExit(1)
}

// Exit calls the exit hook (if set) and exits the program with the given code.
func Exit(code int) {
	if exitHook != nil {
		exitHook(code, "", GetTrace(3))
	}
	osExit(code)
}

// Exitf reports an error with the formatted message, calls the exit hook (if set),
// and then exits the program with the given code.
func Exitf(code int, format string, args ...any) {
	msg := render(Newf(format, args...))
	_, _ = io.WriteString(errOutput, msg)
	if exitHook != nil {
		exitHook(code, msg, GetTrace(3))
	}
	osExit(code)
}

// traceOf returns the trace of the outermost *Error in the chain of err, or the
// current call stack when there is none.
func traceOf(err error) Tracer {
	var e *Error
	if As(err, &e) && e.trace != nil {
		return e.trace
	}
	return GetTrace(4)
}
