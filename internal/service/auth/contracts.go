package auth

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// userStore defines the storage operations required by the auth layer.
type userStore interface {
	ListUsers(ctx context.Context) ([]domain.AdminUser, error)
	SaveUser(ctx context.Context, u domain.AdminUser) error
	DeleteUser(ctx context.Context, username string) (bool, error)
}
