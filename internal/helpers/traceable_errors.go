package helpers

import (
	"github.com/ztrue/tracerr"
)

// Error is a value type wrapping a stack-traced error. The zero value is
// the nil error; callers check with IsNil rather than comparing to nil.
type Error struct {
	err tracerr.Error
}

var NilError = Error{nil}

func (e Error) Error() string {
	if e.err == nil {
		return "<nil>"
	}
	return tracerr.Sprint(e.err)
}

func (e Error) String() string {
	if e.err == nil {
		return "<nil>"
	}
	return tracerr.SprintSource(e.err, 3)
}

func (e Error) Unwrap() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

func (e *Error) IsNil() bool {
	return IsNil(e)
}

func IsNil(err error) bool {
	if traceableErr, ok := err.(Error); ok {
		return traceableErr.err == nil
	}
	if traceableErr, ok := err.(*Error); ok {
		return traceableErr == nil || traceableErr.err == nil
	}
	return err == nil
}

func Wrap(err error) Error {
	if IsNil(err) {
		return NilError
	}
	return Error{tracerr.Wrap(err)}
}

func Errorf(format string, args ...any) Error {
	return Error{tracerr.Errorf(format, args...)}
}
