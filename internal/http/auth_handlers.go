package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	middleware "github.com/kunalkt5656/Taskflow/internal/http/middlewares"
	"github.com/kunalkt5656/Taskflow/internal/http/validators"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewAuthResponse(user, token))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewAuthResponse(user, token))
}

func (h *Handler) GetProfile(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	user, err := h.authService.GetProfile(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	caller := middleware.CurrentUser(c)

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	user, token, err := h.authService.UpdateProfile(c.Request().Context(), caller.ID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewAuthResponse(user, token))
}
