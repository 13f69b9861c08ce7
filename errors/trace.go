package errors

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
)

// Tracer is a call stack recorded when an Error is constructed.
type Tracer interface {
	StackTrace(w io.Writer)
	RangeFrames(handle func(frame runtime.Frame))
	fmt.Stringer
}

// depth is the maximum number of frames recorded.
const depth = 1 << 5

type trace []uintptr

var _ Tracer = (*trace)(nil)

func (t trace) String() string {
	buf := &bytes.Buffer{}
	t.StackTrace(buf)
	return buf.String()
}

// RangeFrames calls handle for each frame, innermost first. A nil handle writes the
// frames to the error output.
func (t trace) RangeFrames(handle func(frame runtime.Frame)) {
	if handle == nil {
		handle = func(frame runtime.Frame) {
			writeFrame(errOutput, frame)
		}
	}
	frames := runtime.CallersFrames(t)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			handle(frame)
		}
		if !more {
			return
		}
	}
}

// StackTrace writes the frames below a "Traceback:" header.
func (t trace) StackTrace(w io.Writer) {
	_, _ = io.WriteString(w, "Traceback:\n")
	t.RangeFrames(func(frame runtime.Frame) {
		writeFrame(w, frame)
	})
}

func writeFrame(w io.Writer, frame runtime.Frame) {
	_, _ = fmt.Fprintf(w, "    %s(...)\n", frame.Function)
	_, _ = fmt.Fprintf(w, "         %s:%d\n", frame.File, frame.Line)
}

// GetTrace records the current call stack, skipping skip frames as runtime.Callers
// does: 0 is runtime.Callers itself, 1 is GetTrace, 2 is its caller.
func GetTrace(skip int) Tracer {
	pcs := make(trace, depth)
	count := runtime.Callers(skip, pcs)
	return pcs[:count]
}

// StackTrace writes the call stack of its caller to w.
func StackTrace(w io.Writer) {
	GetTrace(3).StackTrace(w)
}

// GetTraceback returns the call stack of its caller as a string.
func GetTraceback() string {
	return GetTrace(3).String()
}
