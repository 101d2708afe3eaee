package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	apperrors "github.com/kunalkt5656/Taskflow/internal/errors"
	"github.com/kunalkt5656/Taskflow/internal/services"
)

type Handler struct {
	authService   *services.AuthService
	userService   *services.UserService
	taskService   *services.TaskService
	reportService *services.ReportService
	uploadDir     string
	log           *logrus.Logger
}

func NewHandler(
	authService *services.AuthService,
	userService *services.UserService,
	taskService *services.TaskService,
	reportService *services.ReportService,
	uploadDir string,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		authService:   authService,
		userService:   userService,
		taskService:   taskService,
		reportService: reportService,
		uploadDir:     uploadDir,
		log:           log,
	}
}

// NewErrorHandler converts every error escaping a handler or middleware to
// the JSON {message} envelope. Errors outside the known taxonomy are logged
// and reported as a generic 500.
func NewErrorHandler(log *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *apperrors.Exception
		if errors.As(err, &appErr) {
			_ = c.JSON(appErr.StatusCode, dto.MessageResponse{Message: appErr.Message})
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			_ = c.JSON(httpErr.Code, dto.MessageResponse{Message: fmt.Sprintf("%v", httpErr.Message)})
			return
		}

		log.WithError(err).Error("unexpected error")
		_ = c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
	}
}
