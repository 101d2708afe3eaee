package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	middleware "github.com/kunalkt5656/Taskflow/internal/http/middlewares"
	"github.com/kunalkt5656/Taskflow/internal/http/validators"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	caller := middleware.CurrentUser(c)

	task, err := h.taskService.CreateTask(c.Request().Context(), caller, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	caller := middleware.CurrentUser(c)
	status := constants.TaskStatus(c.QueryParam("status"))

	result, err := h.taskService.ListTasks(c.Request().Context(), caller, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "task removed"})
}

func (h *Handler) ToggleChecklistItem(c echo.Context) error {
	taskID := c.Param("id")
	itemID := c.Param("todoId")
	if taskID == "" || itemID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id and checklist item id are required")
	}

	var req dto.ToggleChecklistItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.ToggleChecklistItem(c.Request().Context(), taskID, itemID, req.Completed)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GetDashboardData(c echo.Context) error {
	data, err := h.taskService.GetDashboardData(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, data)
}

func (h *Handler) GetUserDashboardData(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	data, err := h.taskService.GetUserDashboardData(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, data)
}
