package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

// listOrder ranks High before Medium before Low, then soonest due date
// (empty string sorts first), then newest id. Fixed SQL, no user input.
const listOrder = "CASE priority WHEN 'High' THEN 1 WHEN 'Medium' THEN 2 ELSE 3 END, due_date ASC, id DESC"

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// now returns the current UTC time in the stored timestamp format,
// second precision with a Z suffix.
func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

func (r *TaskRepository) CreateTask(ctx context.Context, title, description string, status constants.TaskStatus, priority constants.TaskPriority, category, dueDate string) (*model.Task, error) {
	ts := now()
	task := &model.Task{
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		Category:    category,
		DueDate:     dueDate,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	// Re-read so the response carries the canonical row.
	return r.FindByID(ctx, task.ID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filters dto.TaskFilters) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Priority != "" {
		query = query.Where("priority = ?", filters.Priority)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	tasks := []model.Task{}
	err := query.Order(listOrder).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Distinct("category").
		Where("category != ''").
		Order("category COLLATE NOCASE").
		Pluck("category", &categories).Error
	return categories, err
}

// Update overwrites only the supplied columns and always rewrites
// updated_at. The caller has already trimmed textual values.
func (r *TaskRepository) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.Task, error) {
	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	updates := make(map[string]interface{}, len(fields)+1)
	for column, value := range fields {
		updates[column] = value
	}
	updates["updated_at"] = now()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
