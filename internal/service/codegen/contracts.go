package codegen

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// shipmentKeys is the slice of the storage gateway the generator needs.
type shipmentKeys interface {
	ListShipments(ctx context.Context) (map[string]domain.Shipment, error)
}
