package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "Invalid JSON body",
	StatusCode: http.StatusBadRequest,
}
