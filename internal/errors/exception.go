package errors

import (
	"errors"
	"net/http"
)

// Exception is an error carrying a fixed HTTP status and the exact
// client-facing message for it. Handlers and the repository return
// these values; the HTTP error handler maps them onto the response.
type Exception struct {
	Message    string
	StatusCode int
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
