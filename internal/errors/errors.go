// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Unauthenticated indicates no token was available for a call that requires one.
	// The request is never sent in this case.
	Unauthenticated Kind = "unauthenticated"
	// InvalidCredentials indicates the backend rejected the presented credential.
	InvalidCredentials Kind = "invalid_credentials"
	// InvalidURL indicates a malformed endpoint; a configuration-level failure.
	InvalidURL Kind = "invalid_url"
	// InvalidArgument indicates locally rejected input; the request is never sent.
	InvalidArgument Kind = "invalid_argument"
	// Transport indicates a network-level failure (timeout, DNS, connection refused).
	Transport Kind = "transport"
	// Server indicates a non-2xx HTTP response; Status carries the code.
	Server Kind = "server"
	// Decode indicates a response body that does not match the expected shape.
	Decode Kind = "decode"
)

// E wraps an error with kind and human-friendly message.
// Status is set for Server and InvalidCredentials errors.
type E struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Status builds a Server error carrying the HTTP status code.
// 401 responses map to InvalidCredentials so callers can tell a rejected
// token apart from other server failures.
func Status(status int, msg string) *E {
	kind := Server
	if status == 401 {
		kind = InvalidCredentials
	}
	return &E{Kind: kind, Message: msg, Status: status}
}

// KindOf extracts the Kind from err, unwrapping as needed.
// Errors that were not created by this package report an empty Kind.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }
