package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/repository"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/session"
)

// AuthUseCase handles login and session issuance. The password is accepted
// but never verified: accounts are auto-registered on the first login with
// an unseen campus email.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions *session.Store
	domain   string
}

// NewAuthUseCase constructs AuthUseCase. domain is the required email suffix
// without the leading "@".
func NewAuthUseCase(users repository.UserRepository, sessions *session.Store, domain string) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, domain: domain}
}

// Login resolves or creates the user for the email and issues a session.
func (u *AuthUseCase) Login(ctx context.Context, email, _ string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if !strings.HasSuffix(email, "@"+u.domain) {
		return nil, "", domainErrors.ErrInvalidDomain
	}

	usr, err := u.FindOrCreate(ctx, email)
	if err != nil {
		return nil, "", err
	}

	return usr, u.sessions.Create(usr), nil
}

// FindOrCreate looks the user up by email, registering a student account
// named after the email's local part when none exists. A unique-violation
// race between two first logins resolves to the winner's row.
func (u *AuthUseCase) FindOrCreate(ctx context.Context, email string) (*model.User, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	name := email[:strings.Index(email, "@")]
	usr, err = u.users.Create(ctx, email, name, model.RoleStudent)
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		return u.users.GetByEmail(ctx, email)
	}
	return usr, err
}

// ResolveSession returns the user bound to a session identifier.
func (u *AuthUseCase) ResolveSession(id string) (*model.User, bool) {
	return u.sessions.Resolve(id)
}
