// Package apperr defines the typed failure taxonomy shared by the backend
// service, the RPC boundary and the gateway.  Business failures
// (validation, not-found, conflict) are kept distinguishable from
// transport and persistence failures so the gateway can map each kind to
// a different client-visible outcome without inspecting message text.
//
// Errors cross the RPC boundary as their Error() string, which always
// starts with the machine-readable kind token ("conflict: ...").  Decode
// reverses that on the client side, so the taxonomy survives the process
// boundary even though the RPC layer only transports strings.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure.
type Kind string

const (
	// Validation marks a request missing a required identifier or field.
	Validation Kind = "validation"
	// NotFound marks an absent entity.
	NotFound Kind = "not_found"
	// Conflict marks a business-rule rejection: a maintenance-blocked or
	// date-overlap-blocked booking, or an incorrect password.
	Conflict Kind = "conflict"
	// Connection marks an unreachable backend service.
	Connection Kind = "connection"
	// Persistence marks an underlying store failure.
	Persistence Kind = "persistence"
)

// Error is a classified failure with a human-readable message and an
// optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around a cause.  The message
// should carry the operation and key attempted so the failure can be
// diagnosed without re-querying.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Error renders the canonical "kind: message" form that travels over the
// RPC boundary.  The wrapped cause is appended for diagnostics.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error { return e.Err }

// Message returns the human-readable part without the kind token.
func (e *Error) Message() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// KindOf extracts the Kind of an error.  Errors outside the taxonomy
// report Persistence, the catch-all for unexpected lower-layer failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Persistence
}

// Is lets errors.Is match any error of a given kind against a prototype
// produced by New(kind, "").
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Decode re-types an error string received from the remote service.  The
// server always renders taxonomy errors as "kind: message"; anything that
// does not carry a known kind token is classified as Persistence.
func Decode(msg string) *Error {
	for _, kind := range []Kind{Validation, NotFound, Conflict, Connection, Persistence} {
		prefix := string(kind) + ": "
		if strings.HasPrefix(msg, prefix) {
			return &Error{Kind: kind, Msg: strings.TrimPrefix(msg, prefix)}
		}
	}
	return &Error{Kind: Persistence, Msg: msg}
}
