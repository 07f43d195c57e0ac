package apiclient

import (
	"context"
	"errors"
	"fmt"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Code     int
	Method   string
	Endpoint string
	// Body holds a short excerpt of the response body, if any.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s %s)", e.Code, e.Method, e.Endpoint)
}

// StatusCode returns the upstream status; /readyz reports it.
func (e *StatusError) StatusCode() int { return e.Code }

// TransportError signals that no response was received (DNS, refused
// connection, canceled context, ...).
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError signals a 2xx response whose body is not the expected JSON.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsStatus reports whether err carries a backend HTTP status and returns it.
func IsStatus(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is a malformed-response failure.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsCanceled reports whether the call was aborted by its context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
