package errors

import (
	stderr "errors"
	"fmt"
	"io"
	"reflect"
	"runtime"
)

var Is = stderr.Is
var As = stderr.As
var Unwrap = stderr.Unwrap
var Join = stderr.Join

type errString string

func (e errString) Error() string {
	return string(e)
}

// wrapError carries a context message on top of an existing error.
type wrapError struct {
	msg   string
	cause error
}

func (w *wrapError) Error() string {
	return w.msg
}

func (w *wrapError) Unwrap() error {
	return w.cause
}

// Error owns an arbitrary error value. Only the error interface of the boxed value
// is used: its message is the message of the Error and its cause is the cause of
// the Error, so boxing never adds a level to the cause chain.
//
// An Error is never modified after construction.
type Error struct {
	inner error
	trace Tracer
}

var _ error = (*Error)(nil)
var _ fmt.Formatter = (*Error)(nil)

// From boxes err. It returns nil for a nil err and err itself when it already is an *Error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{inner: err, trace: GetTrace(3)}
}

func (e *Error) Error() string {
	return e.inner.Error()
}

// Unwrap returns the cause of the boxed value, or nil.
func (e *Error) Unwrap() error {
	return stderr.Unwrap(e.inner)
}

// Is reports whether the boxed value itself matches target. The rest of the
// chain is left to errors.Is, which continues with Unwrap.
func (e *Error) Is(target error) bool {
	return isValue(e.inner, target)
}

// As finds the boxed value itself for errors.As.
func (e *Error) As(target any) bool {
	return asValue(e.inner, target)
}

// Trace returns the call stack recorded when the Error was constructed.
func (e *Error) Trace() Tracer {
	return e.trace
}

func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = io.WriteString(f, PrintErrorChain(e))
			if e.trace != nil {
				_, _ = io.WriteString(f, "\n\nTrace:\n")
				e.trace.RangeFrames(func(frame runtime.Frame) {
					writeFrame(f, frame)
				})
			}
			return
		}
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = io.WriteString(f, e.Error())
	}
}

// New returns an error with the message text and no cause.
func New(text string) error {
	return &Error{
		inner: errString(text),
		trace: GetTrace(3),
	}
}

// Newf returns an error whose message is the formatted text and which has no cause.
// Error arguments are rendered by their message only, they do not become causes;
// use Wrap to keep an error as the cause.
func Newf(format string, a ...any) error {
	return &Error{
		inner: errString(fmt.Sprintf(format, a...)),
		trace: GetTrace(3),
	}
}

// Bail is Newf, named for early-return sites:
//
//	return errors.Bail("unexpected size: %d", n)
func Bail(format string, a ...any) error {
	return &Error{
		inner: errString(fmt.Sprintf(format, a...)),
		trace: GetTrace(3),
	}
}

// Wrap returns an error whose message is the formatted context and whose cause is err,
// kept unchanged with its whole chain. It returns nil if err is nil.
func Wrap(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return &Error{
		inner: &wrapError{msg: fmt.Sprintf(format, a...), cause: err},
		trace: GetTrace(3),
	}
}

// multiError is an error with several causes, such as the result of Join.
type multiError interface {
	Unwrap() []error
}

// isValue matches target against err alone, without walking the chain.
// The members of a multi-error are matched too, since Unwrap cannot reach them.
func isValue(err, target error) bool {
	if target == nil {
		return err == target
	}
	if _, ok := err.(multiError); ok {
		return stderr.Is(err, target)
	}
	if reflect.TypeOf(target).Comparable() && err == target {
		return true
	}
	if x, ok := err.(interface{ Is(error) bool }); ok {
		return x.Is(target)
	}
	return false
}

// asValue assigns err to target when it fits, without walking the chain.
// target has already been checked by errors.As to be a non-nil pointer.
func asValue(err error, target any) bool {
	if _, ok := err.(multiError); ok {
		return stderr.As(err, target)
	}
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return false
	}
	typ := val.Type().Elem()
	if reflect.TypeOf(err).AssignableTo(typ) {
		val.Elem().Set(reflect.ValueOf(err))
		return true
	}
	if x, ok := err.(interface{ As(any) bool }); ok {
		return x.As(target)
	}
	return false
}
