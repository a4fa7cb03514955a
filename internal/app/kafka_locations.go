package app

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/locations"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/transport/kafka"
)

// makeLocationsHandler adapts the location event processor to the consumer.
func makeLocationsHandler(p *locations.Processor) kafka.HandleFunc {
	return func(ctx context.Context, ev locations.Event) error {
		return p.Handle(ctx, ev)
	}
}
