package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/auth"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/stretchr/testify/require"
)

const testSessionID = "session-under-test"

// newTestRequest -> creates a request with context containing a logger and a session
func newTestRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))

	ctx := context.WithValue(req.Context(), middleware.LoggerKey, slog.Default())
	ctx = middleware.WithSessionID(ctx, testSessionID)
	return req.WithContext(ctx)
}

func newRegistry(t *testing.T) stores.Registry {
	t.Helper()

	authenticator, err := auth.NewDemoAuthenticator("Demo User", "demo@example.com", "password")
	require.NoError(t, err)

	return stores.NewRegistry(storage.NewMemoryStorage(), authenticator)
}

func newLoadedCatalog(t *testing.T) stores.CatalogStore {
	t.Helper()

	catalog := stores.NewCatalogStore(repository.NewMockProductRepo(nil, 0))
	require.NoError(t, catalog.Load(t.Context()))

	return catalog
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Error   *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))

	return env
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return b
}

// serve routes req through a mux so PathValue is populated.
func serve(pattern string, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.Handle(pattern, h)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}
