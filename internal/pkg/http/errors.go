package http

import (
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
)

// ErrorKind classifies an upstream failure
type ErrorKind string

const (
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindValidation   ErrorKind = "validation"
	KindServer       ErrorKind = "server"
	KindNetwork      ErrorKind = "network"
	KindUnknown      ErrorKind = "unknown"
)

// Default user facing messages per kind
const (
	MessageUnauthorized = "Your session has expired. Please sign in again."
	MessageForbidden    = "You do not have permission to perform this action."
	MessageNotFound     = "The requested resource was not found."
	MessageValidation   = "Please check your input and try again."
	MessageServer       = "Something went wrong on our end. Please try again later."
	MessageNetwork      = "Network error. Please check your connection."
	MessageUnknown      = "An unexpected error occurred."
)

// APIError is returned for every failed upstream call
type APIError struct {
	Kind     ErrorKind `json:"kind"`
	Status   int       `json:"status,omitempty"`
	Message  string    `json:"message"`
	Redirect string    `json:"redirect,omitempty"`
	Err      error     `json:"-"`
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Kind, e.Message)
	}
	return fmt.Sprintf("api error (%s): %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError unwraps err into an APIError
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is an APIError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Kind == kind
}

// errorFromResponse maps a non 2xx response, preferring the server supplied message
func errorFromResponse(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	switch {
	case status == nethttp.StatusUnauthorized:
		apiErr.Kind, apiErr.Message = KindUnauthorized, MessageUnauthorized
	case status == nethttp.StatusForbidden:
		apiErr.Kind, apiErr.Message = KindForbidden, MessageForbidden
	case status == nethttp.StatusNotFound:
		apiErr.Kind, apiErr.Message = KindNotFound, MessageNotFound
	case status == nethttp.StatusUnprocessableEntity:
		apiErr.Kind, apiErr.Message = KindValidation, MessageValidation
	case status >= nethttp.StatusInternalServerError:
		apiErr.Kind, apiErr.Message = KindServer, MessageServer
	default:
		apiErr.Kind, apiErr.Message = KindUnknown, MessageUnknown
	}

	var payload struct {
		Message string `json:"message"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}

	return apiErr
}
