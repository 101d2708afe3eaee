package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/kunalkt5656/Taskflow/internal/errors"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskFilter narrows queries to a status, an assignee, or both. Zero values
// mean "no restriction"; an empty AssigneeID is the admin-wide scope.
type TaskFilter struct {
	Status     constants.TaskStatus
	Priority   constants.TaskPriority
	AssigneeID string
}

func (r *TaskRepository) scoped(ctx context.Context, f TaskFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if f.AssigneeID != "" {
		q = q.Joins(
			"JOIN task_assignees ON task_assignees.task_id = tasks.id AND task_assignees.user_id = ?",
			f.AssigneeID,
		)
	}
	if f.Status != "" {
		q = q.Where("tasks.status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("tasks.priority = ?", f.Priority)
	}
	return q
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Assignees").First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	err := r.scoped(ctx, f).
		Preload("Assignees").
		Order("tasks.created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListRecent(ctx context.Context, f TaskFilter, limit int) ([]model.Task, error) {
	var tasks []model.Task
	err := r.scoped(ctx, f).
		Preload("Assignees").
		Order("tasks.created_at desc").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Count(ctx context.Context, f TaskFilter) (int64, error) {
	var n int64
	err := r.scoped(ctx, f).Count(&n).Error
	return n, err
}

func (r *TaskRepository) CountDueBetween(ctx context.Context, f TaskFilter, from, to time.Time) (int64, error) {
	var n int64
	err := r.scoped(ctx, f).
		Where("tasks.due_date >= ? AND tasks.due_date < ?", from, to).
		Count(&n).Error
	return n, err
}

// Update persists scalar columns of the task and replaces the assignee set
// in one transaction. The caller is responsible for having recomputed
// progress whenever the checklist changed.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ?", task.ID).
			Select("Title", "Description", "Priority", "Status", "DueDate", "Attachments", "Checklist", "Progress").
			Updates(model.Task{
				Title:       task.Title,
				Description: task.Description,
				Priority:    task.Priority,
				Status:      task.Status,
				DueDate:     task.DueDate,
				Attachments: task.Attachments,
				Checklist:   task.Checklist,
				Progress:    task.Progress,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTaskNotFound
		}
		return tx.Model(task).Association("Assignees").Replace(task.Assignees)
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_assignees WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Task{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTaskNotFound
		}
		return nil
	})
}

// ToggleChecklistItem flips one item's completion flag and rederives the
// task's progress inside a single transaction, so no reader can observe the
// flag and the progress disagreeing.
func (r *TaskRepository) ToggleChecklistItem(ctx context.Context, taskID, itemID string, completed bool) (*model.Task, error) {
	var updated *model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.Preload("Assignees").First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		found := false
		for i := range task.Checklist {
			if task.Checklist[i].ID == itemID {
				task.Checklist[i].Completed = completed
				found = true
				break
			}
		}
		if !found {
			return apperrors.ErrChecklistItemNotFound
		}

		task.RecomputeProgress()

		if err := tx.Model(&model.Task{}).
			Where("id = ?", task.ID).
			Select("Checklist", "Progress").
			Updates(model.Task{Checklist: task.Checklist, Progress: task.Progress}).Error; err != nil {
			return err
		}

		updated = &task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

type PerformanceRow struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	CompletedCount int64  `json:"completedCount"`
}

// CompletedCountsByAssignee groups completed tasks by assignee. A completed
// task with several assignees contributes one count to each of them.
func (r *TaskRepository) CompletedCountsByAssignee(ctx context.Context) ([]PerformanceRow, error) {
	var rows []PerformanceRow
	err := r.db.WithContext(ctx).
		Table("task_assignees").
		Select("users.id as user_id, users.name as name, users.email as email, count(*) as completed_count").
		Joins("JOIN tasks ON tasks.id = task_assignees.task_id AND tasks.status = ?", constants.StatusCompleted).
		Joins("JOIN users ON users.id = task_assignees.user_id").
		Group("users.id, users.name, users.email").
		Order("completed_count desc").
		Scan(&rows).Error
	return rows, err
}
