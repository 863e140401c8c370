package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		userID uint
		ttl    time.Duration
	}{
		{name: "default ttl", userID: 1, ttl: 0},
		{name: "short ttl", userID: 42, ttl: 30 * time.Second},
		{name: "long ttl", userID: 99999, ttl: 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTokenService("test-secret", tt.ttl)

			token, err := svc.Issue(tt.userID)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			got, err := svc.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, got)
		})
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	assert.Equal(t, 600*time.Second, svc.TTL())
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", 600*time.Second)
	// Issue as if 601 seconds have already passed.
	svc.now = func() time.Time { return time.Now().Add(-601 * time.Second) }

	token, err := svc.Issue(7)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("test-secret", 600*time.Second)

	token, err := svc.Issue(7)
	require.NoError(t, err)

	// Flip one bit in the signature segment.
	tampered := token[:len(token)-1] + string(token[len(token)-1]^1)
	require.NotEqual(t, token, tampered)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", 600*time.Second)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("key-one", 600*time.Second)
	verifier := NewTokenService("key-two", 600*time.Second)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
