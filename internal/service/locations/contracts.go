package locations

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/tracking"
)

// tracker is the slice of the tracking service the processor needs.
type tracker interface {
	UpdateLocation(ctx context.Context, code string, upd tracking.LocationUpdate) (*domain.Shipment, error)
}

type counter interface {
	Inc()
}
