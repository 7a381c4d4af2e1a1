package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "task-manager.com/task-manager/internal/errors"
)

// ErrorHandler renders every failure as {"error": message}. Method
// mismatches on known paths are reported as plain 404s, matching the
// API contract for unsupported method/path combinations.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal Server Error"

	var appErr *apperrors.Exception
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		message = appErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if status == http.StatusMethodNotAllowed {
		status = http.StatusNotFound
		message = "Not Found"
	}

	if writeErr := c.JSON(status, echo.Map{"error": message}); writeErr != nil {
		c.Logger().Error(writeErr)
	}
}
