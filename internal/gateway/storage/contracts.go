package storage

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// RemoteStore defines the operations the gateway needs from the network
// backend. A nil RemoteStore means the service runs in local-only mode.
type RemoteStore interface {
	ListUsers(ctx context.Context) ([]domain.AdminUser, error)
	UpsertUser(ctx context.Context, u domain.AdminUser) error
	DeleteUser(ctx context.Context, username string) error

	ListDrivers(ctx context.Context) ([]domain.Driver, error)
	UpsertDriver(ctx context.Context, d domain.Driver) error
	DeleteDriver(ctx context.Context, id string) error

	ListShipments(ctx context.Context) (map[string]domain.Shipment, error)
	GetShipment(ctx context.Context, code string) (*domain.Shipment, error)
	UpsertShipment(ctx context.Context, s domain.Shipment) error
	DeleteShipment(ctx context.Context, code string) error
}

type counter interface {
	Inc()
}
