package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers (and the HTTP layer) can react
// without string-matching messages.
type Kind int

const (
	KindNotFound Kind = iota
	KindInvalidArgument
	KindInvalidTransition
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

// Error is the typed failure every core operation returns.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func InvalidTransition(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidTransition, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the Kind of err, or ok=false when err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsInvalidArgument(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidArgument
}

func IsInvalidTransition(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInvalidTransition
}

func IsConflict(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConflict
}
