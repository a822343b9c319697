package errors

import "net/http"

// ErrTaskNotFound covers both "no such task" and "task belongs to another
// owner". The two cases are deliberately indistinguishable so that probing
// with foreign ids never reveals whether a record exists.
var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}
