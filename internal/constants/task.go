package constants

type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

func IsValidStatus(s string) bool {
	switch TaskStatus(s) {
	case StatusToDo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func IsValidPriority(p string) bool {
	switch TaskPriority(p) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
