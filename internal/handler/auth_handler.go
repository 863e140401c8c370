package handler

import (
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "userapi/internal/errors"
	"userapi/internal/model"
	"userapi/internal/service"
	"userapi/internal/status"
)

// CurrentUserKey is the echo context key under which the basic-auth
// middleware stores the authenticated *model.User.
const CurrentUserKey = "current_user"

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	auth  service.AuthService
	users service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth service.AuthService, users service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// TokenResponse carries a freshly issued token and its validity in seconds.
type TokenResponse struct {
	Token    string `json:"token"`
	Duration int    `json:"duration"`
}

// GetToken godoc
// @Summary Issue a signed auth token
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Success 200 {object} status.Envelope
// @Failure 401 {object} status.Envelope
// @Router /token [get]
func (h *AuthHandler) GetToken(c echo.Context) error {
	user, ok := c.Get(CurrentUserKey).(*model.User)
	if !ok {
		code, s := apperrors.MapError(apperrors.ErrAuthenticationFailed)
		return c.JSON(code, status.Fail(s))
	}

	token, duration, err := h.auth.IssueToken(c.Request().Context(), user)
	if err != nil {
		code, s := apperrors.MapError(err)
		return c.JSON(code, status.Fail(s))
	}

	return c.JSON(http.StatusOK, status.OK(TokenResponse{Token: token, Duration: duration}))
}

// Login godoc
// @Summary Check credentials
// @Tags auth
// @Produce json
// @Security BasicAuth
// @Success 200 {object} status.Envelope
// @Failure 401 {object} status.Envelope
// @Router /login [get]
func (h *AuthHandler) Login(c echo.Context) error {
	if _, ok := c.Get(CurrentUserKey).(*model.User); !ok {
		code, s := apperrors.MapError(apperrors.ErrAuthenticationFailed)
		return c.JSON(code, status.Fail(s))
	}
	return c.JSON(http.StatusOK, status.OKMessage("login success"))
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} status.Envelope
// @Failure 401 {object} status.Envelope
// @Router /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		code, s := apperrors.MapError(apperrors.ErrAuthenticationFailed)
		return c.JSON(code, status.Fail(s))
	}

	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		code, s := apperrors.MapError(apperrors.ErrAuthenticationFailed)
		return c.JSON(code, status.Fail(s))
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		code, s := apperrors.MapError(apperrors.ErrAuthenticationFailed)
		return c.JSON(code, status.Fail(s))
	}

	user, err := h.users.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		code, s := apperrors.MapError(err)
		return c.JSON(code, status.Fail(s))
	}

	return c.JSON(http.StatusOK, status.OK(UserResponse{Username: user.Username}))
}
