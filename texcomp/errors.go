package texcomp

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the errors returned by this package.
type ErrorCode uint32

const (
	// Success is the code reported for a nil error.
	Success ErrorCode = 0

	// ErrInvalidArgument reports a rejected input: a missing surface or
	// settings record, a buffer of the wrong shape, a field array of the wrong
	// arity or an unknown profile name. The call did not reach the encoder.
	ErrInvalidArgument ErrorCode = 1

	// ErrUnavailable reports that an encoder backend is not compiled into
	// this build.
	ErrUnavailable ErrorCode = 2
)

// ErrorString returns the symbolic name of code, or "" for unknown codes.
func ErrorString(code ErrorCode) string {
	switch code {
	case Success:
		return "TEXCOMP_SUCCESS"
	case ErrInvalidArgument:
		return "TEXCOMP_ERR_INVALID_ARGUMENT"
	case ErrUnavailable:
		return "TEXCOMP_ERR_UNAVAILABLE"
	default:
		return ""
	}
}

// Error is a typed error that carries an ErrorCode.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if s := ErrorString(e.Code); s != "" {
		return "texcomp: " + s
	}
	return "texcomp: error"
}

// NewError returns an *Error with the given code and message.
func NewError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// ErrorCodeOf returns the code carried by err, or Success for nil.
//
// Errors that are not *Error (I/O failures surfaced by helpers) report
// ErrInvalidArgument.
func ErrorCodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrInvalidArgument
}

// IsInvalidArgument reports whether err is an *Error with ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrInvalidArgument
}

func invalidArgument(format string, args ...any) error {
	return &Error{Code: ErrInvalidArgument, Msg: "texcomp: " + fmt.Sprintf(format, args...)}
}
