package service

import (
	"context"
	"fmt"

	"userapi/internal/auth"
	apperrors "userapi/internal/errors"
	"userapi/internal/model"
)

// AuthService resolves a caller's identity from a (identifier, secret) pair
// and issues tokens for authenticated users.
type AuthService interface {
	// Authenticate tries the identifier as a signed token first, then as a
	// username with secret as the password. Returns ErrAuthenticationFailed
	// when neither path resolves a user; the failing path is not revealed.
	Authenticate(ctx context.Context, identifier, secret string) (*model.User, error)
	// IssueToken returns a fresh signed token for user and its validity in
	// seconds.
	IssueToken(ctx context.Context, user *model.User) (token string, duration int, err error)
}

type authService struct {
	users  UserService
	tokens *auth.TokenService
}

// NewAuthService creates an authenticator over the user service and token
// service.
func NewAuthService(users UserService, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Authenticate(ctx context.Context, identifier, secret string) (*model.User, error) {
	// Token path. A valid signature naming a user that no longer exists falls
	// through to the password path rather than failing outright.
	if id, err := s.tokens.Verify(identifier); err == nil {
		if user, err := s.users.GetUser(ctx, id); err == nil {
			return user, nil
		}
	}

	// Password path.
	if user, ok := s.users.VerifyPassword(ctx, identifier, secret); ok {
		return user, nil
	}

	return nil, apperrors.ErrAuthenticationFailed
}

func (s *authService) IssueToken(_ context.Context, user *model.User) (string, int, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", 0, fmt.Errorf("issue token: %w", err)
	}
	return token, int(s.tokens.TTL().Seconds()), nil
}
