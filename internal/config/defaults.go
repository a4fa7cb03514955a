package config

import "time"

const defaultPort = 8080

const defaultDataDir = "data"

var defaultGeo = Geo{
	BaseURL: "https://nominatim.openstreetmap.org/search",
	Timeout: 10 * time.Second,
}

var defaultKafka = Kafka{
	Topic:   "shipment-locations",
	GroupID: "rodovar-tracker",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       1,
	Burst:      5,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = PprofConfig{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPprof returns the default profiling server settings.
func DefaultPprof() PprofConfig {
	return defaultPprof
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultGeo returns the default geocoding provider settings.
func DefaultGeo() Geo {
	return defaultGeo
}

// DefaultKafka returns the default location feed settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
