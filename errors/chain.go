package errors

import (
	"fmt"
	"io"
	"strings"
)

// maxChainDepth bounds the number of causes rendered for one error, so that a
// chain whose cause refers back to an earlier error still terminates.
const maxChainDepth = 1 << 10

// ErrorChain renders an error together with its causes.
//
//	%s, %v  outer: middle: root
//	%+v     outer
//
//	        Caused by:
//	            0: middle
//	            1: root
type ErrorChain struct {
	ref Ref
}

var _ fmt.Formatter = ErrorChain{}
var _ fmt.Stringer = ErrorChain{}

// Chain returns the renderer of the complete cause chain of err.
func Chain(err error) ErrorChain {
	return ErrorChain{ref: View(err)}
}

// String returns the single-line form.
func (c ErrorChain) String() string {
	var sb strings.Builder
	writeInline(&sb, c.ref)
	return sb.String()
}

func (c ErrorChain) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			writeMultiline(f, c.ref)
			return
		}
		writeInline(f, c.ref)
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", c.String())
	default:
		writeInline(f, c.ref)
	}
}

// PrintErrorChain returns the message of err followed by the message of every
// transitive cause, outermost first, one per line below a "Caused by:" header.
// An error without a cause is rendered as its message alone.
func PrintErrorChain(err error) string {
	var sb strings.Builder
	writeMultiline(&sb, View(err))
	return sb.String()
}

func writeInline(w io.Writer, top Ref) {
	if top.IsZero() {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = io.WriteString(w, top.Message())
	n := 0
	for cause := top.Cause(); !cause.IsZero(); cause = cause.Cause() {
		if n == maxChainDepth {
			_, _ = io.WriteString(w, ": ...")
			return
		}
		_, _ = io.WriteString(w, ": ")
		_, _ = io.WriteString(w, cause.Message())
		n++
	}
}

func writeMultiline(w io.Writer, top Ref) {
	if top.IsZero() {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = io.WriteString(w, top.Message())
	first := top.Cause()
	if first.IsZero() {
		return
	}
	_, _ = io.WriteString(w, "\n\nCaused by:\n")
	if first.Cause().IsZero() {
		_, _ = io.WriteString(w, "    ")
		_, _ = io.WriteString(w, first.Message())
		return
	}
	n := 0
	for cause := first; !cause.IsZero(); cause = cause.Cause() {
		if n == maxChainDepth {
			_, _ = fmt.Fprintf(w, "\n%5s: cause chain truncated after %d levels", "...", maxChainDepth)
			return
		}
		if n > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = fmt.Fprintf(w, "%5d: %s", n, cause.Message())
		n++
	}
}
