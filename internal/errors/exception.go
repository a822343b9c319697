package errors

import (
	"errors"
	"net/http"
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Exception struct {
	Message    string
	StatusCode int
	Fields     []FieldError
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// FieldErrors returns the field descriptors carried by a validation
// failure, or nil for every other kind of error.
func FieldErrors(err error) []FieldError {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
