package ports

import (
	"context"

	"github.com/cartences/cartences-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindRoleByID(ctx context.Context, id int64) (string, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
