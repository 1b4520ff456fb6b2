package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	registry  stores.Registry
	limiter   repository.LoginLimiter
	validator *validator.Validate
}

// NewAuthHandler takes an optional limiter; nil disables login throttling.
func NewAuthHandler(registry stores.Registry, limiter repository.LoginLimiter) *AuthHandler {
	return &AuthHandler{registry: registry, limiter: limiter, validator: validator.New()}
}

func authView(a stores.AuthStore) models.AuthView {
	return models.AuthView{
		User:            a.User(),
		IsAuthenticated: a.IsAuthenticated(),
		Error:           a.Err(),
	}
}

func (h *AuthHandler) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		response.Success(w, http.StatusOK, authView(sess.Auth))
	}
}

func (h *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")
			return
		}

		remaining := -1

		if h.limiter != nil {
			allowed, left, retryAfter, err := h.limiter.CheckLoginRateLimit(r.Context(), req.Email)
			if err != nil {
				logger.Error("Rate limit check failed", slog.Any("error", err))
				response.Error(w, errors.ServiceUnavailableError("Rate limit check failed").WithError(err))
				return
			}

			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many login attempts. Please try again later.").
					WithDetail(fmt.Sprintf("retry after %d seconds", retryAfter)))
				return
			}

			remaining = left
		}

		if err := sess.Auth.Login(r.Context(), req.Email, req.Password); err != nil {
			logger.Warn("Login failed", slog.String("email", req.Email))

			if appErr, ok := errors.IsAppError(err); ok && remaining >= 0 {
				err = appErr.WithDetail(fmt.Sprintf("%d attempts remaining", remaining))
			}

			response.Error(w, err)
			return
		}

		logger.Info("User logged in", slog.String("userId", sess.Auth.User().ID))
		response.Success(w, http.StatusOK, authView(sess.Auth))
	}
}

func (h *AuthHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")
			return
		}

		if err := sess.Auth.Register(r.Context(), utils.SanitizeText(req.Name), req.Email, req.Password); err != nil {
			logger.Warn("Registration rejected", slog.String("email", req.Email), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User registered", slog.String("userId", sess.Auth.User().ID))
		response.Success(w, http.StatusCreated, authView(sess.Auth))
	}
}

func (h *AuthHandler) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sess, ok := currentSession(w, r, h.registry)
		if !ok {
			return
		}

		sess.Auth.Logout(r.Context())

		middleware.LoggerFromContext(r.Context()).Info("User logged out")
		response.Success(w, http.StatusOK, authView(sess.Auth))
	}
}
