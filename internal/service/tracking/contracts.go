package tracking

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// shipmentStore defines the storage operations required by the tracking layer.
type shipmentStore interface {
	ListShipments(ctx context.Context) (map[string]domain.Shipment, error)
	GetShipment(ctx context.Context, code string) (*domain.Shipment, error)
	SaveShipment(ctx context.Context, s domain.Shipment) error
	DeleteShipment(ctx context.Context, code string) error
	FindShipmentByDriverPhone(ctx context.Context, phone string) (*domain.Shipment, error)
}

// geoResolver resolves place descriptions to coordinates.
type geoResolver interface {
	Resolve(ctx context.Context, place, state, detailedAddress string) domain.Coordinates
}

// codeGenerator produces unique shipment codes.
type codeGenerator interface {
	Generate(ctx context.Context) (string, error)
}
