// Package apierror carries an HTTP status alongside an error so handlers can
// render failures without switching on every sentinel at the boundary.
package apierror

import "fmt"

type APIError struct {
	HTTPStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
}

func New(status int, code string, message string) *APIError {
	return &APIError{HTTPStatus: status, Code: code, Message: message}
}

func (e *APIError) WithDetails(details string) *APIError {
	copied := *e
	copied.Details = details
	return &copied
}
