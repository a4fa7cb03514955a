package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DATA_DIR", "REMOTE_DB_URL", "REMOTE_DB_KEY",
		"GEOCODER_URL", "GEOCODER_TIMEOUT",
		"KAFKA_BROKERS", "KAFKA_TOPIC", "KAFKA_GROUP_ID",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_RATE", "RATE_LIMIT_BURST",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "data", cfg.DataDir)
	require.False(t, cfg.SeedDemo)
	require.False(t, cfg.Remote.Enabled())

	require.Equal(t, "https://nominatim.openstreetmap.org/search", cfg.Geo.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Geo.Timeout)

	require.Empty(t, cfg.Kafka.Brokers)
	require.Equal(t, "shipment-locations", cfg.Kafka.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/rodovar")
	t.Setenv("REMOTE_DB_URL", "postgres://rodovar@db.example.com:5432/tracking")
	t.Setenv("REMOTE_DB_KEY", "s3cret")
	t.Setenv("GEOCODER_URL", "http://geo.local/search")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092, broker-2:9092")
	t.Setenv("KAFKA_TOPIC", "locations")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "/var/lib/rodovar", cfg.DataDir)
	require.True(t, cfg.Remote.Enabled())
	require.Equal(t, "http://geo.local/search", cfg.Geo.BaseURL)
	require.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "locations", cfg.Kafka.Topic)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestRemote_Enabled(t *testing.T) {
	t.Parallel()

	require.False(t, config.Remote{}.Enabled())
	require.False(t, config.Remote{URL: "postgres://h/db"}.Enabled())
	require.False(t, config.Remote{Key: "k"}.Enabled())
	require.True(t, config.Remote{URL: "postgres://h/db", Key: "k"}.Enabled())
}

func TestRemote_DSN(t *testing.T) {
	t.Parallel()

	r := config.Remote{URL: "postgres://rodovar@db:5432/tracking", Key: "k1"}
	require.Equal(t, "postgres://rodovar@db:5432/tracking?password=k1", r.DSN())

	r = config.Remote{URL: "postgres://rodovar@db:5432/tracking?sslmode=disable", Key: "k1"}
	require.Equal(t, "postgres://rodovar@db:5432/tracking?sslmode=disable&password=k1", r.DSN())

	r = config.Remote{URL: "postgres://rodovar@db:5432/tracking"}
	require.Equal(t, "postgres://rodovar@db:5432/tracking", r.DSN())
}
