package client

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure classes produced by the transport.
type Kind string

const (
	KindTimeout      Kind = "Timeout"
	KindNetwork      Kind = "Network"
	KindBadRequest   Kind = "BadRequest"
	KindUnauthorized Kind = "Unauthorized"
	KindForbidden    Kind = "Forbidden"
	KindNotFound     Kind = "NotFound"
	KindServer       Kind = "Server"
	KindCancelled    Kind = "Cancelled"
	KindUnknown      Kind = "Unknown"
)

// Kinds lists every Kind in declaration order.
var Kinds = []Kind{
	KindTimeout, KindNetwork, KindBadRequest, KindUnauthorized, KindForbidden,
	KindNotFound, KindServer, KindCancelled, KindUnknown,
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrTimeout      = &Error{Kind: KindTimeout}
	ErrNetwork      = &Error{Kind: KindNetwork}
	ErrBadRequest   = &Error{Kind: KindBadRequest}
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrServer       = &Error{Kind: KindServer}
	ErrCancelled    = &Error{Kind: KindCancelled}
	ErrUnknown      = &Error{Kind: KindUnknown}
)

// Error is a classified transport failure. StatusCode is zero when no HTTP
// response was received.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

func newError(kind Kind, msg string, status int, cause error) *Error {
	return &Error{Kind: kind, Message: msg, StatusCode: status, Err: cause}
}

// NewDecodeError reports a response payload that could not be decoded.
func NewDecodeError(err error) *Error {
	return newError(KindUnknown, fmt.Sprintf("decode response: %v", err), 0, err)
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinels by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of a classified error, KindUnknown for any other
// non-nil error and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
