package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Remote stores the optional remote database settings. Both URL and Key must
// be present for the remote backend to be used; their absence switches the
// whole service into local-only mode.
type Remote struct {
	URL string
	Key string
}

// Enabled reports whether a remote backend is configured.
func (r Remote) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" && strings.TrimSpace(r.Key) != ""
}

// DSN builds a pgx connection string from the endpoint URL and access key.
func (r Remote) DSN() string {
	if r.Key == "" {
		return r.URL
	}
	sep := "?"
	if strings.Contains(r.URL, "?") {
		sep = "&"
	}
	return r.URL + sep + "password=" + r.Key
}

// Geo stores geocoding provider settings.
type Geo struct {
	BaseURL string
	Timeout time.Duration
}

// Kafka stores the live location feed settings. Empty brokers or topic
// disable the worker's consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RateLimit stores public tracking endpoint rate limit settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// PprofConfig stores the side profiling server settings. Non-loopback
// access requires basic auth credentials.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Config stores service settings.
type Config struct {
	Port      int
	DataDir   string
	SeedDemo  bool
	Remote    Remote
	Geo       Geo
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     PprofConfig
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		DataDir:   defaultDataDir,
		Geo:       DefaultGeo(),
		Kafka:     DefaultKafka(),
		RateLimit: DefaultRateLimit(),
		Pprof:     DefaultPprof(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	cfg.Remote.URL = os.Getenv("REMOTE_DB_URL")
	cfg.Remote.Key = os.Getenv("REMOTE_DB_KEY")

	if v := os.Getenv("GEOCODER_URL"); v != "" {
		cfg.Geo.BaseURL = v
	}
	if v := os.Getenv("GEOCODER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Geo.Timeout = d
		}
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitBrokers(v)
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		cfg.Kafka.Topic = v
	}
	if v := os.Getenv("KAFKA_GROUP_ID"); v != "" {
		cfg.Kafka.GroupID = v
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimit.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RateLimit.Rate = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit.Burst = n
		}
	}

	if v := os.Getenv("PPROF_ENABLED"); v != "" {
		cfg.Pprof.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("PPROF_ADDR"); v != "" {
		cfg.Pprof.Addr = v
	}
	cfg.Pprof.User = os.Getenv("PPROF_USER")
	cfg.Pprof.Pass = os.Getenv("PPROF_PASS")

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory for the local store files")
	pflag.BoolVar(&cfg.SeedDemo, "seed-demo", false, "populate demo data on startup")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return nil, fmt.Errorf("data dir must not be empty")
	}
	return cfg, nil
}

func splitBrokers(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
