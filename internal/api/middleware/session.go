package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// SessionTokenHeader carries a freshly minted token back to the client.
const SessionTokenHeader = "X-Session-Token"

type sessionContextKey string

const sessionIDKey = sessionContextKey("session_id")

// SessionTokens mints and verifies the bearer tokens that name a session.
type SessionTokens interface {
	NewSession() (string, string, error)
	Parse(token string) (string, error)
}

// Session resolves the caller's session from the Authorization header. A
// missing, malformed or expired token is not an error: the caller simply
// gets a new session and its token in the X-Session-Token header.
func Session(tokens SessionTokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			logger := LoggerFromContext(r.Context())

			sessionID := ""

			if token, ok := bearerToken(r); ok {
				id, err := tokens.Parse(token)
				if err != nil {
					logger.Debug("Discarding invalid session token", slog.String("error", err.Error()))
				} else {
					sessionID = id
				}
			}

			if sessionID == "" {
				id, token, err := tokens.NewSession()
				if err != nil {
					logger.Error("Failed to start session", slog.Any("error", err))
					response.Error(w, errors.InternalError("Failed to start session").WithError(err))
					return
				}

				sessionID = id
				w.Header().Set(SessionTokenHeader, token)
				logger.Info("Started new session", slog.String("sessionId", sessionID))
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			ctx = WithLogger(ctx, logger.With(slog.String("sessionId", sessionID)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// WithSessionID is used by tests and background jobs that act on a session
// without an HTTP request.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// Token is of format : "Bearer <token>"
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", false
	}

	return tokenParts[1], true
}
