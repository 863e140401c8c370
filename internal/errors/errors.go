package errors

import (
	"errors"
	"net/http"

	"userapi/internal/status"
)

var (
	// ErrMissingArgument is returned when a required request field is absent.
	ErrMissingArgument = errors.New("missing argument")
	// ErrEmptyField is returned when a required request field is present but empty.
	ErrEmptyField = errors.New("something is empty")
	// ErrDuplicateUser is returned when a username is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user does not exist")
	// ErrAuthenticationFailed is returned for any failed credential check.
	// Callers cannot tell which check failed.
	ErrAuthenticationFailed = errors.New("login failed")
)

// MapError resolves a domain error to its HTTP status code and envelope
// status. Unknown errors collapse to a generic failure so nothing internal
// leaks to the caller.
func MapError(err error) (int, status.Status) {
	switch {
	case errors.Is(err, ErrMissingArgument):
		return http.StatusBadRequest, status.MissingArgument
	case errors.Is(err, ErrEmptyField):
		return http.StatusBadRequest, status.SomethingEmpty
	case errors.Is(err, ErrDuplicateUser):
		return http.StatusConflict, status.UserExists
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound, status.UserNotFound
	case errors.Is(err, ErrAuthenticationFailed):
		return http.StatusUnauthorized, status.LoginFailed
	default:
		return http.StatusInternalServerError, status.DefaultFailed
	}
}
