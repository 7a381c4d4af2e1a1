package errors

import "net/http"

var ErrNoFieldsToUpdate = &Exception{
	Message:    "No fields to update",
	StatusCode: http.StatusBadRequest,
}
