package services

import (
	"context"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	repository "github.com/kunalkt5656/Taskflow/internal/repositories"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// ListUsers returns every user annotated with their assigned-task counts
// per status. Counts are fetched in one grouped query, not per user.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserWithTaskCounts, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.users.TaskCountsByUser(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UserWithTaskCounts, 0, len(users))
	for _, user := range users {
		c := counts[user.ID]
		result = append(result, dto.UserWithTaskCounts{
			User:            user,
			PendingTasks:    c.Pending,
			InProgressTasks: c.InProgress,
			CompletedTasks:  c.Completed,
		})
	}
	return result, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
