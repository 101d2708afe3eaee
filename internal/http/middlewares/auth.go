package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/kunalkt5656/Taskflow/internal/errors"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	"github.com/kunalkt5656/Taskflow/internal/services"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

const userContextKey = "auth.user"

// Authenticate verifies the bearer token and attaches the resolved user to
// the echo context. Tokens whose subject no longer exists are rejected.
func Authenticate(authService *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return apperrors.ErrUnauthorized
			}

			user, err := authService.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireRole gates a route on the caller's role, after Authenticate.
func RequireRole(role constants.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return apperrors.ErrUnauthorized
			}
			if user.Role != role {
				return apperrors.ErrForbidden
			}
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
