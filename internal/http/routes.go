package http

import (
	"github.com/labstack/echo/v4"

	middleware "task-manager.com/task-manager/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, staticDir string, rateLimiter echo.MiddlewareFunc) {
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.RequestID())
	e.Use(rateLimiter)

	e.GET("/api/tasks", h.ListTasks)
	e.GET("/api/categories", h.ListCategories)
	e.POST("/api/tasks", h.CreateTask)
	e.PUT("/api/tasks/:id", h.UpdateTask)
	e.DELETE("/api/tasks/:id", h.DeleteTask)

	e.GET("/*", StaticHandler(staticDir))
}
