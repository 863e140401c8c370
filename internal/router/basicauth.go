package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"userapi/internal/handler"
	"userapi/internal/service"
	"userapi/internal/status"
)

// BasicAuth authenticates the HTTP Basic Authorization header through svc and
// attaches the resolved user to the request context. The username slot may
// carry either an actual username or a previously issued token; svc decides.
// Every failure answers with the same login_failed envelope so callers cannot
// tell a bad token from a bad password.
func BasicAuth(svc service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier, secret, ok := c.Request().BasicAuth()
			if !ok {
				return loginFailed(c)
			}

			user, err := svc.Authenticate(c.Request().Context(), identifier, secret)
			if err != nil {
				return loginFailed(c)
			}

			c.Set(handler.CurrentUserKey, user)
			return next(c)
		}
	}
}

func loginFailed(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
	return c.JSON(http.StatusUnauthorized, status.Fail(status.LoginFailed))
}
