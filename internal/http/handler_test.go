package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kunalkt5656/Taskflow/internal/auth"
	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	repository "github.com/kunalkt5656/Taskflow/internal/repositories"
	"github.com/kunalkt5656/Taskflow/internal/services"
)

type testServer struct {
	e    *echo.Echo
	auth *services.AuthService
	task *services.TaskService
}

func newTestServer(t *testing.T) *testServer {
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

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	reportService := services.NewReportService(taskRepo)

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	e := echo.New()
	handler := NewHandler(authService, userService, taskService, reportService, t.TempDir(), log)
	Register(e, handler, authService)

	return &testServer{e: e, auth: authService, task: taskService}
}

func (s *testServer) request(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) registerUser(t *testing.T, name, email string) string {
	t.Helper()

	rec := s.request(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"`+name+`","email":"`+email+`","password":"secret123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s returned %d: %s", email, rec.Code, rec.Body.String())
	}

	var resp dto.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad register response: %v", err)
	}
	return resp.Token
}

func TestRoutes_AuthRequired(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/tasks", "/api/auth/profile", "/api/report/dashboard"} {
		rec := s.request(t, http.MethodGet, path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: expected 401, got %d", path, rec.Code)
		}
	}
}

func TestRoutes_MemberForbiddenFromAdminEndpoints(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser(t, "Bob", "bob@example.com")

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/api/report/user-performance"},
		{http.MethodGet, "/api/user"},
		{http.MethodDelete, "/api/user/some-id"},
	} {
		rec := s.request(t, tc.method, tc.path, token, "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("%s %s as member: expected 403, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRoutes_LoginFailureIsGeneric(t *testing.T) {
	s := newTestServer(t)
	s.registerUser(t, "Alice", "alice@example.com")

	rec := s.request(t, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error envelope is not JSON: %v", err)
	}
	if _, ok := body["token"]; ok {
		t.Error("failed login response contains a token")
	}
	if msg, _ := body["message"].(string); strings.Contains(strings.ToLower(msg), "password") {
		t.Errorf("error message leaks detail: %q", msg)
	}
}

func TestRoutes_DuplicateRegisterConflict(t *testing.T) {
	s := newTestServer(t)
	s.registerUser(t, "Alice", "alice@example.com")

	rec := s.request(t, http.MethodPost, "/api/auth/register", "",
		`{"name":"Clone","email":"alice@example.com","password":"other456"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", rec.Code)
	}
}

func TestRoutes_ChecklistToggleEndToEnd(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser(t, "Alice", "alice@example.com")

	rec := s.request(t, http.MethodPost, "/api/tasks", token,
		`{"title":"t","description":"d","todoChecklist":[{"text":"a"},{"text":"b"}]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task returned %d: %s", rec.Code, rec.Body.String())
	}

	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("bad create response: %v", err)
	}
	if len(task.Checklist) != 2 || task.Checklist[0].ID == "" {
		t.Fatalf("checklist items missing server-assigned ids: %+v", task.Checklist)
	}

	rec = s.request(t, http.MethodPut, "/api/tasks/"+task.ID+"/todo/"+task.Checklist[0].ID, token,
		`{"completed":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle returned %d: %s", rec.Code, rec.Body.String())
	}

	var updated model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("bad toggle response: %v", err)
	}
	if updated.Progress != 50 {
		t.Errorf("expected progress 50, got %d", updated.Progress)
	}

	rec = s.request(t, http.MethodPut, "/api/tasks/"+task.ID+"/todo/bogus", token,
		`{"completed":true}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", rec.Code)
	}
}

func TestRoutes_CreateTaskIgnoresClientCreatedBy(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser(t, "Alice", "alice@example.com")

	me, err := s.auth.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	rec := s.request(t, http.MethodPost, "/api/tasks", token,
		`{"title":"t","description":"d","createdBy":"spoofed-id"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create task returned %d: %s", rec.Code, rec.Body.String())
	}

	var task model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("bad create response: %v", err)
	}
	if task.CreatedByID != me.ID {
		t.Errorf("createdBy not bound to caller: got %s, want %s", task.CreatedByID, me.ID)
	}
}

func TestRoutes_CreateTaskValidation(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser(t, "Alice", "alice@example.com")

	rec := s.request(t, http.MethodPost, "/api/tasks", token, `{"description":"d"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing title, got %d", rec.Code)
	}

	rec = s.request(t, http.MethodPost, "/api/tasks", token, `{"title":"t"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing description, got %d", rec.Code)
	}
}
