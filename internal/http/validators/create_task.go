package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	return nil
}
