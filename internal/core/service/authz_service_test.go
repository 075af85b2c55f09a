package service

import (
	"context"
	"testing"
	"time"

	"github.com/cartences/cartences-api/internal/core/domain"
)

func seedUser(repo *stubAuthRepo, username, role string) *domain.User {
	u, _ := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
	})
	return u
}

func TestAuthzService_RequireRole_Allows(t *testing.T) {
	repo := newStubAuthRepo()
	tokens := NewTokenService("secret", time.Hour)
	gate := NewAuthzService(tokens, repo)

	mgr := seedUser(repo, "boss", domain.RoleManager)
	token, err := tokens.Issue(mgr.ID, mgr.Username, mgr.Role)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := gate.RequireRole(context.Background(), "Bearer "+token, domain.RoleManager)
	if err != nil {
		t.Fatalf("RequireRole failed: %v", err)
	}
	if claims.Username != "boss" || claims.Role != domain.RoleManager {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthzService_RequireRole_Forbids(t *testing.T) {
	repo := newStubAuthRepo()
	tokens := NewTokenService("secret", time.Hour)
	gate := NewAuthzService(tokens, repo)

	usr := seedUser(repo, "alice", domain.RoleUser)
	token, err := tokens.Issue(usr.ID, usr.Username, usr.Role)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := gate.RequireRole(context.Background(), token, domain.RoleManager); err != domain.ErrRoleForbidden {
		t.Fatalf("expected ErrRoleForbidden, got %v", err)
	}
}

func TestAuthzService_RequireRole_RefetchesRole(t *testing.T) {
	repo := newStubAuthRepo()
	tokens := NewTokenService("secret", time.Hour)
	gate := NewAuthzService(tokens, repo)

	usr := seedUser(repo, "carol", domain.RoleUser)
	token, err := tokens.Issue(usr.ID, usr.Username, usr.Role)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Promote after issuance. The embedded claim still says "user", but the
	// gate must see the store's current role.
	repo.users["carol"].Role = domain.RoleManager

	claims, err := gate.RequireRole(context.Background(), token, domain.RoleManager)
	if err != nil {
		t.Fatalf("RequireRole ignored the store role: %v", err)
	}
	if claims.Role != domain.RoleManager {
		t.Fatalf("expected resolved role %q, got %q", domain.RoleManager, claims.Role)
	}
}

func TestAuthzService_RequireRole_InvalidToken(t *testing.T) {
	repo := newStubAuthRepo()
	gate := NewAuthzService(NewTokenService("secret", time.Hour), repo)

	if _, err := gate.RequireRole(context.Background(), "Bearer garbage", domain.RoleManager); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if _, err := gate.RequireRole(context.Background(), "", domain.RoleManager); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for empty header, got %v", err)
	}
}

func TestAuthzService_RequireRole_UnknownSubject(t *testing.T) {
	repo := newStubAuthRepo()
	tokens := NewTokenService("secret", time.Hour)
	gate := NewAuthzService(tokens, repo)

	token, err := tokens.Issue(999, "ghost", domain.RoleManager)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := gate.RequireRole(context.Background(), token, domain.RoleManager); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEndToEnd_RegisterLoginAuthorize(t *testing.T) {
	repo := newStubAuthRepo()
	tokens := NewTokenService("secret", time.Hour)
	auth := NewAuthService(repo, tokens, nil)
	gate := NewAuthzService(tokens, repo)

	user, err := auth.Register(context.Background(), "alice", "pw1", "a@x.com")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role %q, got %q", domain.RoleUser, user.Role)
	}

	token, err := auth.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := gate.RequireRole(context.Background(), token, domain.RoleManager); err != domain.ErrRoleForbidden {
		t.Fatalf("expected ErrRoleForbidden for user token, got %v", err)
	}

	if _, err := auth.Login(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
