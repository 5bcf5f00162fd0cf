package token

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditTokenService(t *testing.T) {
	// Setup
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatalf("Error generating random bytes: %v", err)
	}
	secretKey := base64.URLEncoding.EncodeToString(bytes)
	issuer := "testIssuer"

	svc := NewEditTokenService(secretKey, issuer)
	mazeID := uuid.New()

	t.Run("Issue and Verify valid token", func(t *testing.T) {
		token, err := svc.Issue(mazeID, 5*time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		got, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, mazeID, got)
	})

	t.Run("Verify invalid token", func(t *testing.T) {
		_, err := svc.Verify("invalidTokenString")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Verify expired token", func(t *testing.T) {
		token, err := svc.Issue(mazeID, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Verify token from another issuer", func(t *testing.T) {
		other := NewEditTokenService(secretKey, "someoneElse")
		token, err := other.Issue(mazeID, time.Minute)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Verify token signed with another key", func(t *testing.T) {
		other := NewEditTokenService("another-secret", issuer)
		token, err := other.Issue(mazeID, time.Minute)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Verify token without maze id", func(t *testing.T) {
		claims := jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute).Unix(),
			Issuer:    issuer,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
