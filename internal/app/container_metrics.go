package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RemoteFallbacksTotal   prometheus.Counter `name:"storage_remote_fallbacks_total"`
	RemoteErrorsTotal      prometheus.Counter `name:"storage_remote_errors_total"`
	GeocodeFailuresTotal   prometheus.Counter `name:"geocode_failures_total"`
	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	LocationRetriesTotal   prometheus.Counter `name:"location_event_retries_total"`
}

// provideMetrics registers the service counters on the default registry.
// A counter that is already registered (container rebuilt in-process) is
// reused instead of failing.
func provideMetrics() (metricsOut, error) {
	out := metricsOut{}

	var err error
	if out.RemoteFallbacksTotal, err = registerCounter("storage_remote_fallbacks_total", metrics.NewRemoteFallbacksTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.RemoteErrorsTotal, err = registerCounter("storage_remote_errors_total", metrics.NewRemoteErrorsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.GeocodeFailuresTotal, err = registerCounter("geocode_failures_total", metrics.NewGeocodeFailuresTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.RateLimitExceededTotal, err = registerCounter("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.LocationRetriesTotal, err = registerCounter("location_event_retries_total", metrics.NewLocationRetriesTotal()); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func registerCounter(name string, c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
