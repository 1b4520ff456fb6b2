package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSessionKey = []byte("test-secret-key-123456789012345")

func TestLogging(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		middleware.LoggerFromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()

	// Act
	middleware.Logging(next).ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"msg":"inside handler"`)
	assert.Contains(t, buf.String(), `"correlation_id":"req-123"`)
	assert.Contains(t, buf.String(), `"http_status":418`)
}

func TestLoggerFromContext(t *testing.T) {
	t.Run("Falls back to default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), middleware.LoggerFromContext(context.Background()))
	})

	t.Run("Returns stored logger", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
		ctx := middleware.WithLogger(context.Background(), logger)

		assert.Same(t, logger, middleware.LoggerFromContext(ctx))
	})
}

func TestSession(t *testing.T) {
	issuer := auth.NewTokenIssuer(testSessionKey, time.Hour)
	sessionMiddleware := middleware.Session(issuer)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.SessionIDFromContext(r.Context())
		require.True(t, ok, "session id should be in context")
		seen = id
		w.WriteHeader(http.StatusOK)
	})

	existingID, existingToken, err := issuer.NewSession()
	require.NoError(t, err)

	otherIssuer := auth.NewTokenIssuer([]byte("different-secret-key-0987654321"), time.Hour)
	_, foreignToken, err := otherIssuer.NewSession()
	require.NoError(t, err)

	expiredIssuer := auth.NewTokenIssuer(testSessionKey, -time.Hour)
	_, expiredToken, err := expiredIssuer.NewSession()
	require.NoError(t, err)

	tests := []struct {
		name        string
		authHeader  string
		expectReuse bool
	}{
		{name: "Valid token reuses session", authHeader: "Bearer " + existingToken, expectReuse: true},
		{name: "Missing header starts session", authHeader: ""},
		{name: "Malformed header starts session", authHeader: "Token " + existingToken},
		{name: "Only Bearer starts session", authHeader: "Bearer "},
		{name: "Wrong key starts session", authHeader: "Bearer " + foreignToken},
		{name: "Expired token starts session", authHeader: "Bearer " + expiredToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			// Act
			sessionMiddleware(next).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, http.StatusOK, rr.Code)

			if tc.expectReuse {
				assert.Equal(t, existingID, seen)
				assert.Empty(t, rr.Header().Get(middleware.SessionTokenHeader))
				return
			}

			assert.NotEqual(t, existingID, seen)
			minted := rr.Header().Get(middleware.SessionTokenHeader)
			require.NotEmpty(t, minted)

			id, err := issuer.Parse(minted)
			require.NoError(t, err)
			assert.Equal(t, seen, id)
		})
	}
}

type failingTokens struct{}

func (failingTokens) NewSession() (string, string, error) { return "", "", assert.AnError }
func (failingTokens) Parse(string) (string, error)        { return "", assert.AnError }

func TestSessionMintFailure(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	middleware.Session(failingTokens{})(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success": false, "error": {"code": "INTERNAL_ERROR", "message": "Failed to start session"}}`, rr.Body.String())
}
