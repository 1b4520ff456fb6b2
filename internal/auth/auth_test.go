package auth_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/auth"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoAuthenticator(t *testing.T) {
	authenticator, err := auth.NewDemoAuthenticator("Demo User", "demo@example.com", "password")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		user, err := authenticator.Authenticate(t.Context(), "demo@example.com", "password")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, "Demo User", user.Name)
		assert.Equal(t, "demo@example.com", user.Email)
	})

	t.Run("Failure - wrong password", func(t *testing.T) {
		user, err := authenticator.Authenticate(t.Context(), "demo@example.com", "wrong")

		require.Error(t, err)
		assert.Nil(t, user)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
		assert.Equal(t, auth.InvalidCredentialsMessage, appErr.Message)
	})

	t.Run("Failure - email case differs", func(t *testing.T) {
		user, err := authenticator.Authenticate(t.Context(), "DEMO@Example.com", "password")

		require.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("Failure - unknown email", func(t *testing.T) {
		user, err := authenticator.Authenticate(t.Context(), "x@x.com", "password")

		require.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestTokenIssuer(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("test-key"), time.Hour)

	t.Run("Round trip", func(t *testing.T) {
		sessionID, token, err := issuer.NewSession()
		require.NoError(t, err)
		assert.NotEmpty(t, sessionID)

		parsed, err := issuer.Parse(token)

		require.NoError(t, err)
		assert.Equal(t, sessionID, parsed)
	})

	t.Run("Wrong key", func(t *testing.T) {
		other := auth.NewTokenIssuer([]byte("other-key"), time.Hour)
		token, err := other.Sign("abc")
		require.NoError(t, err)

		_, err = issuer.Parse(token)

		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := auth.NewTokenIssuer([]byte("test-key"), -time.Minute)
		token, err := expired.Sign("abc")
		require.NoError(t, err)

		_, err = issuer.Parse(token)

		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")

		assert.Error(t, err)
	})
}
