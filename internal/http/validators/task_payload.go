package validators

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
)

// ValidateTaskPayload checks a decoded payload against the field rules.
// With partial set, required-field presence is skipped and only fields
// that are present are checked. Checks short-circuit in a fixed order:
// missing-required, empty-title, invalid-status, invalid-priority,
// invalid-due-date.
func ValidateTaskPayload(p *dto.TaskPayload, partial bool) error {
	if !partial {
		missing := []string{}
		if p.Title == nil {
			missing = append(missing, "title")
		}
		if p.Status == nil {
			missing = append(missing, "status")
		}
		if p.Priority == nil {
			missing = append(missing, "priority")
		}
		if len(missing) > 0 {
			return echo.NewHTTPError(
				http.StatusBadRequest,
				"Missing fields: "+strings.Join(missing, ", "),
			)
		}
	}

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title cannot be empty")
	}

	if p.Status != nil && !constants.IsValidStatus(*p.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	}

	if p.Priority != nil && !constants.IsValidPriority(*p.Priority) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid priority")
	}

	if p.DueDate != nil && *p.DueDate != "" {
		if _, err := time.Parse("2006-01-02", *p.DueDate); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "due_date must be YYYY-MM-DD")
		}
	}

	return nil
}
