package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/http/validators"
	"task-manager.com/task-manager/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

// bindPayload decodes a JSON request body. An absent body is a bind
// failure here (echo's binder treats zero-length bodies as a no-op).
func bindPayload(c echo.Context) (*dto.TaskPayload, error) {
	if c.Request().ContentLength == 0 {
		return nil, apperrors.ErrInvalidJSON
	}

	var payload dto.TaskPayload
	if err := c.Bind(&payload); err != nil {
		return nil, apperrors.ErrInvalidJSON
	}
	return &payload, nil
}

func (h *Handler) ListTasks(c echo.Context) error {
	filters := dto.TaskFilters{
		Status:   c.QueryParam("status"),
		Priority: c.QueryParam("priority"),
		Category: c.QueryParam("category"),
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.taskService.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateTask(c echo.Context) error {
	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	if err := validators.ValidateTaskPayload(payload, false); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apperrors.ErrInvalidTaskID
	}

	payload, err := bindPayload(c)
	if err != nil {
		return err
	}
	if err := validators.ValidateTaskPayload(payload, true); err != nil {
		return err
	}
	if !payload.HasFields() {
		return apperrors.ErrNoFieldsToUpdate
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, payload)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apperrors.ErrInvalidTaskID
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
