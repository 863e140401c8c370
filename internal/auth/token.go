package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the validity window applied when no TTL is configured.
const DefaultTokenTTL = 600 * time.Second

// ErrInvalidToken is the single error returned for any verification failure:
// malformed token, bad signature, or elapsed expiry. Callers cannot tell the
// causes apart.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user identity inside an issued token.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256-signed tokens. Tokens are
// self-certifying: no server-side state is kept, and validity depends only on
// the signature and the embedded expiry. The signing key is process-wide and
// must stay constant while issued tokens are outstanding.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time // swapped in tests
}

// NewTokenService creates a token service signing with secret. A non-positive
// ttl falls back to DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured validity window.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue produces a signed token embedding userID, valid for the configured TTL.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded user id. Any failure yields ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
