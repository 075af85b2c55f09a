package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/cartences/cartences-api/internal/core/domain"
	"github.com/cartences/cartences-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo    ports.AuthRepository
	tokens  ports.TokenService
	limiter ports.LoginLimiter
}

// NewAuthService wires the credential store, token issuer and an optional
// login limiter (nil disables throttling).
func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, limiter ports.LoginLimiter) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter}
}

// Register creates a new account. The role is always RoleUser; there is no
// way to register a privileged account. Uniqueness of username and email is
// checked before anything is written, so a conflict leaves no partial row.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	return s.repo.Create(ctx, user)
}

// Login checks the password against the stored hash and returns a signed
// token frozen to the user's id, username and role at this moment.
//
// An unknown username surfaces as ErrUserNotFound, distinct from the
// ErrInvalidCredentials returned for a wrong password. This leaks username
// existence; it is kept because clients depend on the distinct codes.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if s.limiter != nil {
		// The limiter fails open: a broken redis must not take logins down.
		if blocked, err := s.limiter.Blocked(ctx, username); err == nil && blocked {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.limiter != nil {
			_ = s.limiter.RecordFailure(ctx, username)
		}
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username, user.Role)
}
