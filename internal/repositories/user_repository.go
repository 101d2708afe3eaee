package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/kunalkt5656/Taskflow/internal/errors"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes the user together with their assignment rows. Tasks the
// user created are kept; created_by references may dangle after this.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrUserNotFound
		}
		return tx.Exec("DELETE FROM task_assignees WHERE user_id = ?", id).Error
	})
}

type UserTaskCounts struct {
	UserID     string
	Pending    int64
	InProgress int64
	Completed  int64
}

// TaskCountsByUser returns per-user assigned-task counts grouped by status,
// keyed by user id. Users with no assignments are absent from the map.
func (r *UserRepository) TaskCountsByUser(ctx context.Context) (map[string]UserTaskCounts, error) {
	var rows []struct {
		UserID string
		Status constants.TaskStatus
		Count  int64
	}

	err := r.db.WithContext(ctx).
		Table("task_assignees").
		Select("task_assignees.user_id as user_id, tasks.status as status, count(*) as count").
		Joins("JOIN tasks ON tasks.id = task_assignees.task_id").
		Group("task_assignees.user_id, tasks.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]UserTaskCounts, len(rows))
	for _, row := range rows {
		c := counts[row.UserID]
		c.UserID = row.UserID
		switch row.Status {
		case constants.StatusPending:
			c.Pending = row.Count
		case constants.StatusInProgress:
			c.InProgress = row.Count
		case constants.StatusCompleted:
			c.Completed = row.Count
		}
		counts[row.UserID] = c
	}
	return counts, nil
}
