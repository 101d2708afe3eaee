package services

import (
	"context"
	"testing"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

func TestReportService_DashboardStats(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "Admin", "admin@example.com", constants.RoleAdmin)
	ctx := context.Background()

	env.createTask(t, admin, dto.CreateTaskRequest{
		Title: "t1", Description: "d", Status: "pending", Priority: "high",
	})
	env.createTask(t, admin, dto.CreateTaskRequest{
		Title: "t2", Description: "d", Status: "pending", Priority: "low",
	})
	env.createTask(t, admin, dto.CreateTaskRequest{
		Title: "t3", Description: "d", Status: "completed", Priority: "high",
	})

	stats, err := env.reports.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("dashboard stats failed: %v", err)
	}

	if stats.TotalTasks != 3 {
		t.Errorf("expected totalTasks 3, got %d", stats.TotalTasks)
	}
	if stats.Status.Pending != 2 || stats.Status.InProgress != 0 || stats.Status.Completed != 1 {
		t.Errorf("unexpected status breakdown: %+v", stats.Status)
	}
	if stats.Priority.High != 2 || stats.Priority.Medium != 0 || stats.Priority.Low != 1 {
		t.Errorf("unexpected priority breakdown: %+v", stats.Priority)
	}

	// both partitions cover the whole set
	if sum := stats.Status.Pending + stats.Status.InProgress + stats.Status.Completed; sum != stats.TotalTasks {
		t.Errorf("status partition does not cover all tasks: %d != %d", sum, stats.TotalTasks)
	}
	if sum := stats.Priority.High + stats.Priority.Medium + stats.Priority.Low; sum != stats.TotalTasks {
		t.Errorf("priority partition does not cover all tasks: %d != %d", sum, stats.TotalTasks)
	}
}

func TestReportService_UserPerformancePerAssignee(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "Admin", "admin@example.com", constants.RoleAdmin)
	alice := env.createUser(t, "Alice", "alice@example.com", constants.RoleMember)
	bob := env.createUser(t, "Bob", "bob@example.com", constants.RoleMember)
	ctx := context.Background()

	// completed, two assignees: counts once for each
	env.createTask(t, admin, dto.CreateTaskRequest{
		Title: "shared", Description: "d", Status: "completed",
		AssignedTo: []string{alice.ID, bob.ID},
	})
	// completed, alice only
	env.createTask(t, admin, dto.CreateTaskRequest{
		Title: "solo", Description: "d", Status: "completed",
		AssignedTo: []string{alice.ID},
	})
	// pending tasks never count
	env.createTask(t, admin, dto.CreateTaskRequest{
		Title: "open", Description: "d", Status: "pending",
		AssignedTo: []string{bob.ID},
	})

	rows, err := env.reports.GetUserPerformance(ctx)
	if err != nil {
		t.Fatalf("user performance failed: %v", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Email] = row.CompletedCount
		if row.Name == "" {
			t.Errorf("row for %s is missing the joined name", row.Email)
		}
	}

	if counts["alice@example.com"] != 2 {
		t.Errorf("expected alice completedCount 2, got %d", counts["alice@example.com"])
	}
	if counts["bob@example.com"] != 1 {
		t.Errorf("expected bob completedCount 1, got %d", counts["bob@example.com"])
	}
	if _, ok := counts["admin@example.com"]; ok {
		t.Error("admin has no completed assignments and must not appear")
	}
}

func TestReportService_UserPerformanceEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	rows, err := env.reports.GetUserPerformance(context.Background())
	if err != nil {
		t.Fatalf("user performance failed: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected an empty slice, got %#v", rows)
	}
}
