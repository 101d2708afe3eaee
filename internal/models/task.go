package model

import (
	"math"
	"time"

	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

// ChecklistItem is a value embedded in its parent Task. Items have no
// lifecycle of their own and are only written through Task updates.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `gorm:"not null" json:"description"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	DueDate     *time.Time             `json:"dueDate,omitempty"`
	CreatedByID string                 `gorm:"size:36" json:"createdBy"`
	Assignees   []User                 `gorm:"many2many:task_assignees" json:"assignedTo"`
	Attachments []string               `gorm:"serializer:json" json:"attachments"`
	Checklist   []ChecklistItem        `gorm:"serializer:json" json:"todoChecklist"`
	Progress    int                    `gorm:"not null;default:0" json:"progress"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// RecomputeProgress rederives Progress from the checklist. Progress is 0 for
// an empty checklist, otherwise the rounded percentage of completed items.
func (t *Task) RecomputeProgress() {
	total := len(t.Checklist)
	if total == 0 {
		t.Progress = 0
		return
	}
	t.Progress = int(math.Round(100 * float64(t.CompletedTodoCount()) / float64(total)))
}

func (t *Task) CompletedTodoCount() int {
	count := 0
	for _, item := range t.Checklist {
		if item.Completed {
			count++
		}
	}
	return count
}
