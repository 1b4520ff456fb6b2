package stores

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/auth"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

const (
	MinPasswordLength         = 6
	PasswordTooShortMessage   = "Password must be at least 6 characters long"
	unknownAuthFailureMessage = "An unknown error occurred"
)

type AuthStore interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
	User() *models.User
	IsAuthenticated() bool
	Err() string
}

type authStore struct {
	mu            sync.RWMutex
	user          *models.User
	lastErr       string
	authenticator auth.Authenticator
	storage       storage.Storage
	now           func() time.Time
}

// NewAuthStore restores a previously persisted user so a returning session
// stays logged in.
func NewAuthStore(ctx context.Context, s storage.Storage, authenticator auth.Authenticator) AuthStore {
	a := &authStore{storage: s, authenticator: authenticator, now: time.Now}

	var user models.User
	found, err := s.Get(ctx, storage.UserKey, &user)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to restore user", slog.Any("error", err))
	} else if found {
		a.user = &user
	}

	return a
}

// Login leaves any current user untouched when the credentials are rejected.
func (a *authStore) Login(ctx context.Context, email, password string) error {
	user, err := a.authenticator.Authenticate(ctx, email, password)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		appErr, ok := errors.IsAppError(err)
		if !ok {
			appErr = errors.UnauthorizedError(unknownAuthFailureMessage).WithError(err)
		}

		a.lastErr = appErr.Message
		return appErr
	}

	a.setUserLocked(ctx, user)

	return nil
}

// Register performs no uniqueness check; the new user is logged in at once.
func (a *authStore) Register(ctx context.Context, name, email, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if utf8.RuneCountInString(password) < MinPasswordLength {
		a.lastErr = PasswordTooShortMessage
		return errors.ValidationError(PasswordTooShortMessage)
	}

	user := &models.User{
		ID:    strconv.FormatInt(a.now().UnixMilli(), 10),
		Name:  name,
		Email: email,
	}

	a.setUserLocked(ctx, user)

	return nil
}

func (a *authStore) Logout(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = nil
	a.lastErr = ""
	remove(ctx, a.storage, storage.UserKey)
}

func (a *authStore) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return nil
	}

	u := *a.user
	return &u
}

func (a *authStore) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.user != nil
}

func (a *authStore) Err() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.lastErr
}

func (a *authStore) setUserLocked(ctx context.Context, user *models.User) {
	a.user = user
	a.lastErr = ""
	save(ctx, a.storage, storage.UserKey, user)
}
