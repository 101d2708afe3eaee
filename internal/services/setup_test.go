package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kunalkt5656/Taskflow/internal/auth"
	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	repository "github.com/kunalkt5656/Taskflow/internal/repositories"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db      *gorm.DB
	users   *repository.UserRepository
	tasks   *repository.TaskRepository
	auth    *AuthService
	user    *UserService
	task    *TaskService
	reports *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	return &testEnv{
		db:      db,
		users:   userRepo,
		tasks:   taskRepo,
		auth:    NewAuthService(userRepo, tokens),
		user:    NewUserService(userRepo),
		task:    NewTaskService(taskRepo, userRepo),
		reports: NewReportService(taskRepo),
	}
}

func (env *testEnv) createUser(t *testing.T, name, email string, role constants.Role) *model.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := env.users.Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func (env *testEnv) createTask(t *testing.T, creator *model.User, req dto.CreateTaskRequest) *model.Task {
	t.Helper()

	task, err := env.task.CreateTask(context.Background(), creator, req)
	if err != nil {
		t.Fatalf("failed to create task %q: %v", req.Title, err)
	}
	return task
}
