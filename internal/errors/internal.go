package errors

import "net/http"

// ErrInternal is returned for persistence failures not attributable to
// caller input. The message stays generic; the underlying cause is logged,
// never sent to the client.
var ErrInternal = &Exception{
	Message:    "internal error",
	StatusCode: http.StatusInternalServerError,
}
