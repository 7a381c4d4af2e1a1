package model

import (
	"task-manager.com/task-manager/internal/constants"
)

// Task timestamps are stored as TEXT in ISO-8601 form with second
// precision and a Z suffix, matching the wire format exactly.
type Task struct {
	ID          int                    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `gorm:"not null;default:''" json:"description"`
	Status      constants.TaskStatus   `gorm:"type:text;not null;check:chk_tasks_status,status IN ('To Do','In Progress','Completed')" json:"status"`
	Priority    constants.TaskPriority `gorm:"type:text;not null;check:chk_tasks_priority,priority IN ('High','Medium','Low')" json:"priority"`
	Category    string                 `gorm:"not null;default:''" json:"category"`
	DueDate     string                 `gorm:"column:due_date;not null;default:''" json:"due_date"`
	CreatedAt   string                 `gorm:"type:text;not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt   string                 `gorm:"type:text;not null;autoUpdateTime:false" json:"updated_at"`
}
