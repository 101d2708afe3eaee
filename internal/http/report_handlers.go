package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetDashboardStats(c echo.Context) error {
	stats, err := h.reportService.GetDashboardStats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetUserPerformance(c echo.Context) error {
	rows, err := h.reportService.GetUserPerformance(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}
