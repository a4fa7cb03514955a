package seed

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// store is the storage surface needed to populate demo data.
type store interface {
	ListUsers(ctx context.Context) ([]domain.AdminUser, error)
	SaveUser(ctx context.Context, u domain.AdminUser) error
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
	SaveDriver(ctx context.Context, d domain.Driver) error
	GetShipment(ctx context.Context, code string) (*domain.Shipment, error)
	SaveShipment(ctx context.Context, s domain.Shipment) error
}
