// Package rpcerr defines the small, closed error taxonomy every handler
// operation maps its outcome to: BadRequest (caller-induced) or Internal
// (store/network I/O, invariant violations). It follows the familiar
// Kind-tagged structured error shape (a Code plus an Unwrap-able cause),
// with the two Kinds this domain actually needs.
package rpcerr

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code is the high-level category of a handler failure.
type Code string

const (
	// BadRequest indicates the caller is at fault: a rejected batch, or a
	// handler invoked in an unsupported mode (no network/fetcher wired).
	BadRequest Code = "bad_request"
	// Internal indicates a fault on this worker's side: storage I/O,
	// network I/O, or a configuration invariant that didn't hold.
	Internal Code = "internal"
)

// Error is the structured error every handler method returns on failure.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap enables errors.Is/As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// GRPCStatus lets google.golang.org/grpc/status.FromError recover the
// BadRequest/Internal distinction across the wire: grpc-go checks for this
// interface when a handler returns a plain error, so a *Error survives as
// codes.InvalidArgument/codes.Internal instead of collapsing to
// codes.Unknown.
func (e *Error) GRPCStatus() *status.Status {
	code := codes.Internal
	if e.Code == BadRequest {
		code = codes.InvalidArgument
	}
	return status.New(code, e.Error())
}

// BadRequestf builds a BadRequest Error.
func BadRequestf(format string, args ...any) *Error {
	return &Error{Code: BadRequest, Msg: fmt.Sprintf(format, args...)}
}

// Internalf builds an Internal Error with no wrapped cause.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: Internal, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Internal Error wrapping a lower-level cause, e.g. a storage
// I/O failure.
func Wrap(msg string, cause error) *Error {
	return &Error{Code: Internal, Msg: msg, Err: cause}
}
