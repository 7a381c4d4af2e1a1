package dto

// TaskPayload is the decoded body of a create or update request. Every
// field is a pointer so an absent key and an empty string stay
// distinguishable after decoding; unknown keys are dropped.
type TaskPayload struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"`
}

// HasFields reports whether at least one mutable field is present.
func (p *TaskPayload) HasFields() bool {
	return p.Title != nil || p.Description != nil || p.Status != nil ||
		p.Priority != nil || p.Category != nil || p.DueDate != nil
}

// TaskFilters are the equality filters accepted by the list endpoint.
// An empty value leaves that field unconstrained.
type TaskFilters struct {
	Status   string
	Priority string
	Category string
}
