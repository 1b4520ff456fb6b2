package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// currentSession resolves the per-visitor stores for the request. The
// session middleware guarantees an id on every API route.
func currentSession(w http.ResponseWriter, r *http.Request, registry stores.Registry) (*stores.Session, bool) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Request without session")
		response.Error(w, errors.UnauthorizedError("Session required"))
		return nil, false
	}

	return registry.Session(r.Context(), sessionID), true
}

// catalogReady writes 503 while the one-shot load is pending or after it
// failed.
func catalogReady(w http.ResponseWriter, catalog stores.CatalogStore) bool {
	switch catalog.Status() {
	case stores.CatalogReady:
		return true
	case stores.CatalogFailed:
		response.Error(w, errors.LoadFailureError(catalog.Err()))
		return false
	default:
		response.Error(w, errors.ServiceUnavailableError("Products are still loading"))
		return false
	}
}

func pathID(w http.ResponseWriter, r *http.Request, what string) (string, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		response.Error(w, errors.BadRequestError(what+" ID is required"))
		return "", false
	}

	return id, true
}

// optionalFloat parses a query parameter; an absent or empty value is nil.
func optionalFloat(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.AddValidationError(name, "must be a number").WithError(err)
	}

	return &v, nil
}

// queryValues trims repeated query values and drops the empty ones. Search
// terms are only matched, never stored, so they are passed through as typed.
func queryValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
