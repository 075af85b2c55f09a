package service

import (
	"context"
	"strconv"

	"github.com/cartences/cartences-api/internal/core/domain"
	"github.com/cartences/cartences-api/internal/core/ports"
)

// AuthzService is the single authorization gate for protected operations.
// It is deliberately not tied to any route or role: every protected endpoint
// goes through RequireRole with whatever role it needs.
type AuthzService struct {
	tokens ports.TokenService
	repo   ports.AuthRepository
}

func NewAuthzService(tokens ports.TokenService, repo ports.AuthRepository) *AuthzService {
	return &AuthzService{tokens: tokens, repo: repo}
}

// RequireRole verifies the presented token and checks that the acting user
// holds requiredRole. The role is re-fetched from the credential store by the
// token's subject id rather than trusted from the claims, so a role change
// after issuance takes effect without re-login.
func (a *AuthzService) RequireRole(ctx context.Context, raw, requiredRole string) (*domain.Claims, error) {
	claims, err := a.tokens.Verify(raw)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	role, err := a.repo.FindRoleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role != requiredRole {
		return nil, domain.ErrRoleForbidden
	}

	claims.Role = role
	return claims, nil
}
