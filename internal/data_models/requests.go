package dto

import "time"

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest uses pointers so absent fields are left untouched.
type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type ChecklistItemInput struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type CreateTaskRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Priority    string               `json:"priority"`
	Status      string               `json:"status"`
	DueDate     *time.Time           `json:"dueDate"`
	AssignedTo  []string             `json:"assignedTo"`
	Attachments []string             `json:"attachments"`
	Checklist   []ChecklistItemInput `json:"todoChecklist"`
}

// UpdateTaskRequest carries merge semantics: only non-nil fields overwrite
// the stored task. A present checklist triggers a progress recompute.
type UpdateTaskRequest struct {
	Title       *string               `json:"title"`
	Description *string               `json:"description"`
	Priority    *string               `json:"priority"`
	Status      *string               `json:"status"`
	DueDate     *time.Time            `json:"dueDate"`
	AssignedTo  *[]string             `json:"assignedTo"`
	Attachments *[]string             `json:"attachments"`
	Checklist   *[]ChecklistItemInput `json:"todoChecklist"`
}

type ToggleChecklistItemRequest struct {
	Completed bool `json:"completed"`
}
