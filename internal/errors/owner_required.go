package errors

import "net/http"

var ErrOwnerRequired = &Exception{
	Message:    "owner identity is required",
	StatusCode: http.StatusUnauthorized,
}
