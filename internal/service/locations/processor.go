package locations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/apperr"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/tracking"
)

// RetryConfig describes the retry behavior for transient processing failures.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig returns the processor's default retry settings.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 4,
		BaseDelay:   150 * time.Millisecond,
		MaxDelay:    2 * time.Second,
	}
}

// Processor applies live location events to shipments through the tracking
// service. Events for unknown shipments or with unusable payloads are
// dropped; transient storage failures are retried with backoff.
type Processor struct {
	tracker tracker
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewProcessor creates a location event Processor.
func NewProcessor(tracker tracker, logger logx.Logger, retries counter, cfg RetryConfig) *Processor {
	if tracker == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultRetryConfig()
	}
	return &Processor{tracker: tracker, logger: logger, retries: retries, cfg: cfg}
}

// Handle processes a single location Event.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if strings.TrimSpace(e.Code) == "" {
		p.logger.Error("location event without shipment code dropped")
		return nil
	}

	upd := tracking.LocationUpdate{
		City:        e.City,
		State:       e.State,
		Address:     e.Address,
		Coordinates: domain.Coordinates{Lat: e.Lat, Lng: e.Lng},
		Message:     e.Message,
		UpdatedBy:   e.UpdatedBy,
		Live:        true,
	}

	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		_, err := p.tracker.UpdateLocation(ctx, e.Code, upd)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.NotFound) || errors.Is(err, apperr.Invalid) {
			// nothing to retry: the shipment does not exist or the payload is unusable
			p.logger.Error("location event dropped",
				logx.String("code", e.Code),
				logx.Any("err", err),
			)
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == p.cfg.MaxAttempts {
			break
		}
		delay := backoff(p.cfg.BaseDelay, p.cfg.MaxDelay, attempt)
		if p.retries != nil {
			p.retries.Inc()
		}
		p.logger.Warn("location event retry",
			logx.String("code", e.Code),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// backoff computes the delay before the next attempt.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
