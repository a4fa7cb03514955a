package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRemoteFallbacksTotal returns a Prometheus counter for reads served from the local mirror after a remote failure
func NewRemoteFallbacksTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storage_remote_fallbacks_total",
		Help: "Total number of reads served from the local mirror after a remote failure",
	})
}

// NewRemoteErrorsTotal returns a Prometheus counter for remote writes that failed and were absorbed by the local mirror
func NewRemoteErrorsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "storage_remote_errors_total",
		Help: "Total number of remote write failures absorbed by the dual-write mirror",
	})
}

// NewGeocodeFailuresTotal returns a Prometheus counter for geocoding calls that ended in a sentinel fallback
func NewGeocodeFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocode_failures_total",
		Help: "Total number of geocoding calls resolved to a sentinel fallback",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewLocationRetriesTotal returns a Prometheus counter for retry attempts performed by the location event processor
func NewLocationRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "location_event_retries_total",
		Help: "Total number of retry attempts performed by the location event processor",
	})
}
