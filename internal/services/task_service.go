package services

import (
	"context"
	"strings"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	model "task-manager.com/task-manager/internal/models"
	repository "task-manager.com/task-manager/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask persists a validated payload. Textual fields are trimmed
// here; status and priority are stored verbatim.
func (s *TaskService) CreateTask(ctx context.Context, p *dto.TaskPayload) (*model.Task, error) {
	description := ""
	if p.Description != nil {
		description = strings.TrimSpace(*p.Description)
	}
	category := ""
	if p.Category != nil {
		category = strings.TrimSpace(*p.Category)
	}
	dueDate := ""
	if p.DueDate != nil {
		dueDate = strings.TrimSpace(*p.DueDate)
	}

	return s.repo.CreateTask(
		ctx,
		strings.TrimSpace(*p.Title),
		description,
		constants.TaskStatus(*p.Status),
		constants.TaskPriority(*p.Priority),
		category,
		dueDate,
	)
}

func (s *TaskService) ListTasks(ctx context.Context, filters dto.TaskFilters) ([]model.Task, error) {
	return s.repo.List(ctx, filters)
}

func (s *TaskService) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

// UpdateTask applies the fields present in the payload to the stored
// row. An empty payload and a missing id surface as typed errors for
// the handler to map.
func (s *TaskService) UpdateTask(ctx context.Context, id int, p *dto.TaskPayload) (*model.Task, error) {
	fields := make(map[string]interface{})

	if p.Title != nil {
		fields["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		fields["description"] = strings.TrimSpace(*p.Description)
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.Priority != nil {
		fields["priority"] = *p.Priority
	}
	if p.Category != nil {
		fields["category"] = strings.TrimSpace(*p.Category)
	}
	if p.DueDate != nil {
		fields["due_date"] = strings.TrimSpace(*p.DueDate)
	}

	return s.repo.Update(ctx, id, fields)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
