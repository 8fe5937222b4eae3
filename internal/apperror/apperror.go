// Package apperror defines the error taxonomy shared by the location and
// forecast components. Errors carry the HTTP status the API layer should
// answer with, so handlers never have to guess.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	Internal Kind = iota
	InvalidQuery
	NotFound
	DataUnavailable
	DataMalformed
	UpstreamUnavailable
	UpstreamDataIncomplete
)

var kindNames = map[Kind]string{
	Internal:               "InternalError",
	InvalidQuery:           "InvalidQuery",
	NotFound:               "NotFound",
	DataUnavailable:        "DataUnavailable",
	DataMalformed:          "DataMalformed",
	UpstreamUnavailable:    "UpstreamUnavailable",
	UpstreamDataIncomplete: "UpstreamDataIncomplete",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error implements error so a bare Kind can be used as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

// Error is a component-level failure with a status code and a message
// suitable for the response body.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the same Kind, or an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

func newError(kind Kind, status int, message string, err error) *Error {
	return &Error{Kind: kind, Status: status, Message: message, Err: err}
}

func NewInvalidQuery(message string) *Error {
	return newError(InvalidQuery, http.StatusBadRequest, message, nil)
}

func NewNotFound(message string) *Error {
	return newError(NotFound, http.StatusNotFound, message, nil)
}

func NewDataUnavailable(message string, err error) *Error {
	return newError(DataUnavailable, http.StatusInternalServerError, message, err)
}

func NewDataMalformed(message string, err error) *Error {
	return newError(DataMalformed, http.StatusInternalServerError, message, err)
}

// NewUpstreamUnavailable uses status as reported by the provider. A zero
// status is replaced with 502.
func NewUpstreamUnavailable(status int, message string, err error) *Error {
	if status == 0 {
		status = http.StatusBadGateway
	}
	return newError(UpstreamUnavailable, status, message, err)
}

func NewUpstreamDataIncomplete(message string) *Error {
	return newError(UpstreamDataIncomplete, http.StatusInternalServerError, message, nil)
}

func NewInternal(message string, err error) *Error {
	return newError(Internal, http.StatusInternalServerError, message, err)
}

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf returns the status carried by err, or 500 for errors outside the
// taxonomy.
func StatusOf(err error) int {
	if appErr, ok := As(err); ok && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
