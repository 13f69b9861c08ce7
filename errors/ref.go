package errors

import (
	stderr "errors"
)

// Ref is a read-only view of an error the holder does not own. It is meant for
// inspecting or printing an error within a single call: a Ref never copies,
// boxes or releases the value it refers to.
//
// The zero Ref refers to no error. Refs are not comparable; use Err to compare
// the referenced errors.
type Ref struct {
	_   [0]func()
	err error
}

var _ error = Ref{}

// View returns a Ref to err. Viewing a Ref returns it as is.
func View(err error) Ref {
	if r, ok := err.(Ref); ok {
		return r
	}
	return Ref{err: err}
}

// IsZero reports whether r refers to no error.
func (r Ref) IsZero() bool {
	return r.err == nil
}

// Err returns the referenced error.
func (r Ref) Err() error {
	return r.err
}

// Message returns the message of the referenced error, or "" for the zero Ref.
func (r Ref) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Cause returns a view of the cause of the referenced error. The result is the
// zero Ref when there is no cause.
func (r Ref) Cause() Ref {
	if r.err == nil {
		return Ref{}
	}
	return Ref{err: stderr.Unwrap(r.err)}
}

func (r Ref) Error() string {
	if r.err == nil {
		return "<nil>"
	}
	return r.err.Error()
}

func (r Ref) Unwrap() error {
	return r.Cause().err
}

func (r Ref) Is(target error) bool {
	if r.err == nil {
		return false
	}
	return isValue(r.err, target)
}

func (r Ref) As(target any) bool {
	if r.err == nil {
		return false
	}
	return asValue(r.err, target)
}
