package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "userapi/internal/errors"
	"userapi/internal/service"
	"userapi/internal/status"
)

// UserHandler handles user account endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents a user registration request. Fields are
// pointers so an absent key and a present-but-empty value map to different
// response codes.
type CreateUserRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Email    *string `json:"email" validate:"required"`
}

// UserResponse is the public projection of a user record.
type UserResponse struct {
	Username string `json:"username"`
}

// CreateUser godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Registration data"
// @Success 201 {object} status.Envelope
// @Failure 400 {object} status.Envelope
// @Failure 409 {object} status.Envelope
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, status.Fail(status.DefaultFailed))
	}

	// validator's required catches nil pointers, i.e. keys missing from the
	// request body entirely
	if err := c.Validate(&req); err != nil {
		code, s := apperrors.MapError(apperrors.ErrMissingArgument)
		return c.JSON(code, status.Fail(s))
	}

	if *req.Username == "" || *req.Password == "" || *req.Email == "" {
		code, s := apperrors.MapError(apperrors.ErrEmptyField)
		return c.JSON(code, status.Fail(s))
	}

	user, err := h.svc.Register(c.Request().Context(), *req.Username, *req.Password, *req.Email)
	if err != nil {
		code, s := apperrors.MapError(err)
		return c.JSON(code, status.Fail(s))
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/users/%d", user.ID))
	return c.JSON(http.StatusCreated, status.OKMessage("user create success"))
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} status.Envelope
// @Failure 404 {object} status.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		code, s := apperrors.MapError(apperrors.ErrUserNotFound)
		return c.JSON(code, status.Fail(s))
	}

	user, err := h.svc.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		code, s := apperrors.MapError(err)
		return c.JSON(code, status.Fail(s))
	}

	return c.JSON(http.StatusOK, status.OK(UserResponse{Username: user.Username}))
}
