package ports

import (
	"context"

	"github.com/cartences/cartences-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenService issues and verifies signed bearer tokens. Verify accepts the
// raw Authorization header value, with or without a "Bearer " prefix.
type TokenService interface {
	Issue(userID int64, username, role string) (string, error)
	Verify(raw string) (*domain.Claims, error)
}

// Authorizer is the reusable capability check guarding protected operations.
// It verifies the presented token and resolves the acting role before
// comparing it against requiredRole.
type Authorizer interface {
	RequireRole(ctx context.Context, raw, requiredRole string) (*domain.Claims, error)
}

// LoginLimiter damps brute-force attempts against a single username.
type LoginLimiter interface {
	Blocked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
}
