package handlers

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/gateway/storage"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/auth"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/tracking"
)

type authUsecase interface {
	ValidateLogin(ctx context.Context, username, password string) (bool, error)
	List(ctx context.Context) ([]domain.AdminUser, error)
	Save(ctx context.Context, u domain.AdminUser) error
	Delete(ctx context.Context, username string) error
}

// NewAuthUsecase wires the auth service into an authUsecase.
func NewAuthUsecase(svc *auth.Service) authUsecase {
	return svc
}

type trackingUsecase interface {
	List(ctx context.Context) (map[string]domain.Shipment, error)
	Get(ctx context.Context, code string) (*domain.Shipment, error)
	Create(ctx context.Context, in tracking.CreateInput) (domain.Shipment, error)
	UpdateLocation(ctx context.Context, code string, upd tracking.LocationUpdate) (*domain.Shipment, error)
	UpdateStatus(ctx context.Context, code string, status domain.TrackingStatus, updatedBy string) (*domain.Shipment, error)
	Delete(ctx context.Context, code string) error
	TrackByPhone(ctx context.Context, phone string) (*domain.Shipment, error)
}

// NewTrackingUsecase wires the tracking service into a trackingUsecase.
func NewTrackingUsecase(svc *tracking.Service) trackingUsecase {
	return svc
}

type driverStore interface {
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
	SaveDriver(ctx context.Context, d domain.Driver) error
	DeleteDriver(ctx context.Context, id string) error
}

// NewDriverStore wires the storage gateway into a driverStore.
func NewDriverStore(gw *storage.Gateway) driverStore {
	return gw
}
