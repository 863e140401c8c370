package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"userapi/internal/cache"
	"userapi/internal/model"
	"userapi/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute
)

// UserService owns user records and credential checks.
type UserService interface {
	// Register hashes password with bcrypt and persists a new user. Returns
	// ErrDuplicateUser when the username is taken.
	Register(ctx context.Context, username, password, email string) (*model.User, error)
	// GetUser fetches a user by id, serving from cache when possible.
	GetUser(ctx context.Context, id uint) (*model.User, error)
	// VerifyPassword reports whether password matches the stored hash for
	// username. It fails closed: an unknown username and a wrong password are
	// indistinguishable in the result.
	VerifyPassword(ctx context.Context, username, password string) (*model.User, bool)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Register(ctx context.Context, username, password, email string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		Email:        email,
	}

	// No existence pre-check: the unique index on username decides, so
	// concurrent registrations for the same name cannot both succeed.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) VerifyPassword(ctx context.Context, username, password string) (*model.User, bool) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, false
	}
	return user, true
}
