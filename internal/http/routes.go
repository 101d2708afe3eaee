package http

import (
	"github.com/labstack/echo/v4"

	middleware "github.com/kunalkt5656/Taskflow/internal/http/middlewares"
	"github.com/kunalkt5656/Taskflow/internal/services"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

func Register(e *echo.Echo, h *Handler, authService *services.AuthService) {
	e.HTTPErrorHandler = NewErrorHandler(h.log)

	authn := middleware.Authenticate(authService)
	adminOnly := middleware.RequireRole(constants.RoleAdmin)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/profile", h.GetProfile, authn)
	auth.PUT("/profile", h.UpdateProfile, authn)
	auth.POST("/upload-image", h.UploadImage, authn)

	users := api.Group("/user", authn)
	users.GET("", h.ListUsers, adminOnly)
	users.GET("/:id", h.GetUser)
	users.DELETE("/:id", h.DeleteUser, adminOnly)

	tasks := api.Group("/tasks", authn)
	// static paths before /:id so the router never shadows them
	tasks.GET("/dashboard", h.GetDashboardData)
	tasks.GET("/user-dashboard", h.GetUserDashboardData)
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.PUT("/:id/todo/:todoId", h.ToggleChecklistItem)

	report := api.Group("/report", authn)
	report.GET("/dashboard", h.GetDashboardStats)
	report.GET("/user-performance", h.GetUserPerformance, adminOnly)

	e.Static("/upload", h.uploadDir)
	e.GET("/metrics", middleware.MetricsHandler())
}
