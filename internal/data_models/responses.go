package dto

import (
	model "github.com/kunalkt5656/Taskflow/internal/models"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

type AuthResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Role            constants.Role `json:"role"`
	ProfileImageURL string         `json:"profileImageUrl,omitempty"`
	Token           string         `json:"token"`
}

func NewAuthResponse(user *model.User, token string) AuthResponse {
	return AuthResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            user.Role,
		ProfileImageURL: user.ProfileImageURL,
		Token:           token,
	}
}

type UserSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

func NewUserSummary(user *model.User) *UserSummary {
	return &UserSummary{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}
}

// TaskWithCount is the listing projection: the stored task annotated with
// the derived completed-item count.
type TaskWithCount struct {
	model.Task
	CompletedTodoCount int `json:"completedTodoCount"`
}

type StatusSummary struct {
	All        int64 `json:"all"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

type TaskListResponse struct {
	Tasks         []TaskWithCount `json:"tasks"`
	StatusSummary StatusSummary   `json:"statusSummary"`
}

type TaskDetail struct {
	model.Task
	Creator *UserSummary `json:"creator,omitempty"`
}

type UserWithTaskCounts struct {
	model.User
	PendingTasks    int64 `json:"pendingTasks"`
	InProgressTasks int64 `json:"inProgressTasks"`
	CompletedTasks  int64 `json:"completedTasks"`
}

type DashboardData struct {
	TotalTasks      int64        `json:"totalTasks"`
	PendingTasks    int64        `json:"pendingTasks"`
	InProgressTasks int64        `json:"inProgressTasks"`
	CompletedTasks  int64        `json:"completedTasks"`
	TasksDueToday   int64        `json:"tasksDueToday"`
	RecentTasks     []model.Task `json:"recentTasks"`
}

type StatusBreakdown struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

type PriorityBreakdown struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
}

type DashboardStats struct {
	TotalTasks int64             `json:"totalTasks"`
	Status     StatusBreakdown   `json:"status"`
	Priority   PriorityBreakdown `json:"priority"`
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
