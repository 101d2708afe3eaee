package services

import (
	"context"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	repository "github.com/kunalkt5656/Taskflow/internal/repositories"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

type ReportService struct {
	tasks *repository.TaskRepository
}

func NewReportService(tasks *repository.TaskRepository) *ReportService {
	return &ReportService{tasks: tasks}
}

// GetDashboardStats partitions the whole task set twice, by status and by
// priority. Every task lands in exactly one bucket of each partition.
func (s *ReportService) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var stats dto.DashboardStats
	var err error

	if stats.TotalTasks, err = s.tasks.Count(ctx, repository.TaskFilter{}); err != nil {
		return nil, err
	}

	statusCounts := map[constants.TaskStatus]*int64{
		constants.StatusPending:    &stats.Status.Pending,
		constants.StatusInProgress: &stats.Status.InProgress,
		constants.StatusCompleted:  &stats.Status.Completed,
	}
	for status, dst := range statusCounts {
		if *dst, err = s.tasks.Count(ctx, repository.TaskFilter{Status: status}); err != nil {
			return nil, err
		}
	}

	priorityCounts := map[constants.TaskPriority]*int64{
		constants.PriorityHigh:   &stats.Priority.High,
		constants.PriorityMedium: &stats.Priority.Medium,
		constants.PriorityLow:    &stats.Priority.Low,
	}
	for priority, dst := range priorityCounts {
		if *dst, err = s.tasks.Count(ctx, repository.TaskFilter{Priority: priority}); err != nil {
			return nil, err
		}
	}

	return &stats, nil
}

func (s *ReportService) GetUserPerformance(ctx context.Context) ([]repository.PerformanceRow, error) {
	rows, err := s.tasks.CompletedCountsByAssignee(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repository.PerformanceRow{}
	}
	return rows, nil
}
