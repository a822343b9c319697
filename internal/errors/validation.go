package errors

import "net/http"

// NewValidation builds a 400 carrying one descriptor per rejected field.
// Validation failures are produced before any persistence attempt.
func NewValidation(fields ...FieldError) *Exception {
	return &Exception{
		Message:    "validation failed",
		StatusCode: http.StatusBadRequest,
		Fields:     fields,
	}
}

func Field(field, reason string) FieldError {
	return FieldError{Field: field, Reason: reason}
}
