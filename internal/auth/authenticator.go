package auth

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const InvalidCredentialsMessage = "Invalid email or password"

// Authenticator checks a credential pair. Implementations return an
// *errors.AppError with ErrCodeUnauthorized when the pair is rejected.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type demoAuthenticator struct {
	user         models.User
	passwordHash []byte
}

// NewDemoAuthenticator accepts exactly one account. The password is kept only
// as a bcrypt hash.
func NewDemoAuthenticator(name, email, password string) (Authenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	return &demoAuthenticator{
		user: models.User{
			ID:    "1",
			Name:  name,
			Email: email,
		},
		passwordHash: hash,
	}, nil
}

func (a *demoAuthenticator) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	if email != a.user.Email {
		return nil, errors.UnauthorizedError(InvalidCredentialsMessage)
	}

	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return nil, errors.UnauthorizedError(InvalidCredentialsMessage).WithError(err)
	}

	user := a.user

	return &user, nil
}
