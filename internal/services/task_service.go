package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	apperrors "github.com/kunalkt5656/Taskflow/internal/errors"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	repository "github.com/kunalkt5656/Taskflow/internal/repositories"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

const recentTaskLimit = 5

type TaskService struct {
	tasks *repository.TaskRepository
	users *repository.UserRepository
}

func NewTaskService(tasks *repository.TaskRepository, users *repository.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// visibilityScope is empty for admins (all tasks) and the caller's id for
// members (only tasks they are assigned to).
func visibilityScope(caller *model.User) string {
	if caller.Role == constants.RoleAdmin {
		return ""
	}
	return caller.ID
}

func (s *TaskService) resolveAssignees(ctx context.Context, ids []string) ([]model.User, error) {
	assignees := make([]model.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil, apperrors.ErrAssigneeNotFound
			}
			return nil, err
		}
		assignees = append(assignees, *user)
	}
	return assignees, nil
}

// checklistFromInput carries over client-supplied item ids and mints ids for
// new items, keeping each item addressable by the toggle endpoint.
func checklistFromInput(items []dto.ChecklistItemInput) []model.ChecklistItem {
	checklist := make([]model.ChecklistItem, 0, len(items))
	for _, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		checklist = append(checklist, model.ChecklistItem{
			ID:        id,
			Text:      item.Text,
			Completed: item.Completed,
		})
	}
	return checklist
}

// CreateTask binds the creator from the authenticated caller; any
// client-supplied creator value never reaches this path.
func (s *TaskService) CreateTask(ctx context.Context, caller *model.User, req dto.CreateTaskRequest) (*model.Task, error) {
	priority := constants.TaskPriority(req.Priority)
	if priority == "" {
		priority = constants.PriorityMedium
	}
	status := constants.TaskStatus(req.Status)
	if status == "" {
		status = constants.StatusPending
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidation("invalid priority")
	}
	if !status.Valid() {
		return nil, apperrors.NewValidation("invalid status")
	}

	assignees, err := s.resolveAssignees(ctx, req.AssignedTo)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      status,
		DueDate:     req.DueDate,
		CreatedByID: caller.ID,
		Assignees:   assignees,
		Attachments: req.Attachments,
		Checklist:   checklistFromInput(req.Checklist),
	}
	task.RecomputeProgress()

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks returns the caller's visible tasks plus a status summary
// computed over the same scope: a member's summary counts only their own
// assignments.
func (s *TaskService) ListTasks(ctx context.Context, caller *model.User, status constants.TaskStatus) (*dto.TaskListResponse, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.NewValidation("invalid status filter")
	}

	scope := visibilityScope(caller)

	tasks, err := s.tasks.List(ctx, repository.TaskFilter{Status: status, AssigneeID: scope})
	if err != nil {
		return nil, err
	}

	annotated := make([]dto.TaskWithCount, 0, len(tasks))
	for _, task := range tasks {
		annotated = append(annotated, dto.TaskWithCount{
			Task:               task,
			CompletedTodoCount: task.CompletedTodoCount(),
		})
	}

	summary, err := s.statusSummary(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &dto.TaskListResponse{Tasks: annotated, StatusSummary: *summary}, nil
}

func (s *TaskService) statusSummary(ctx context.Context, assigneeID string) (*dto.StatusSummary, error) {
	var summary dto.StatusSummary
	var err error

	if summary.All, err = s.tasks.Count(ctx, repository.TaskFilter{AssigneeID: assigneeID}); err != nil {
		return nil, err
	}
	if summary.Pending, err = s.tasks.Count(ctx, repository.TaskFilter{Status: constants.StatusPending, AssigneeID: assigneeID}); err != nil {
		return nil, err
	}
	if summary.InProgress, err = s.tasks.Count(ctx, repository.TaskFilter{Status: constants.StatusInProgress, AssigneeID: assigneeID}); err != nil {
		return nil, err
	}
	if summary.Completed, err = s.tasks.Count(ctx, repository.TaskFilter{Status: constants.StatusCompleted, AssigneeID: assigneeID}); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*dto.TaskDetail, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.TaskDetail{Task: *task}
	if creator, err := s.users.FindByID(ctx, task.CreatedByID); err == nil {
		detail.Creator = dto.NewUserSummary(creator)
	}
	return detail, nil
}

// UpdateTask merges the provided fields into the stored task. A payload
// that includes the checklist recomputes progress in the same write, so the
// derived value can never drift from the items.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		priority := constants.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return nil, apperrors.NewValidation("invalid priority")
		}
		task.Priority = priority
	}
	if req.Status != nil {
		status := constants.TaskStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidation("invalid status")
		}
		task.Status = status
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Attachments != nil {
		task.Attachments = *req.Attachments
	}
	if req.AssignedTo != nil {
		assignees, err := s.resolveAssignees(ctx, *req.AssignedTo)
		if err != nil {
			return nil, err
		}
		task.Assignees = assignees
	}
	if req.Checklist != nil {
		task.Checklist = checklistFromInput(*req.Checklist)
		task.RecomputeProgress()
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) ToggleChecklistItem(ctx context.Context, taskID, itemID string, completed bool) (*model.Task, error) {
	return s.tasks.ToggleChecklistItem(ctx, taskID, itemID, completed)
}

// GetDashboardData aggregates the global dashboard; GetUserDashboardData
// the caller-scoped one. Both use the same assembly with a different scope.
func (s *TaskService) GetDashboardData(ctx context.Context) (*dto.DashboardData, error) {
	return s.dashboardData(ctx, "")
}

func (s *TaskService) GetUserDashboardData(ctx context.Context, callerID string) (*dto.DashboardData, error) {
	return s.dashboardData(ctx, callerID)
}

func (s *TaskService) dashboardData(ctx context.Context, assigneeID string) (*dto.DashboardData, error) {
	summary, err := s.statusSummary(ctx, assigneeID)
	if err != nil {
		return nil, err
	}

	// due-today window: server-local midnight to midnight
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	dueToday, err := s.tasks.CountDueBetween(ctx, repository.TaskFilter{AssigneeID: assigneeID}, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	recent, err := s.tasks.ListRecent(ctx, repository.TaskFilter{AssigneeID: assigneeID}, recentTaskLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardData{
		TotalTasks:      summary.All,
		PendingTasks:    summary.Pending,
		InProgressTasks: summary.InProgress,
		CompletedTasks:  summary.Completed,
		TasksDueToday:   dueToday,
		RecentTasks:     recent,
	}, nil
}
