package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/config"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/gateway/storage"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/seed"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/auth"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/locations"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/tracking"
)

func localOnlyConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:      8080,
		DataDir:   t.TempDir(),
		Geo:       config.DefaultGeo(),
		Kafka:     config.DefaultKafka(),
		RateLimit: config.DefaultRateLimit(),
		Pprof:     config.DefaultPprof(),
	}
}

func setupStorageContainer(t *testing.T, cfg *config.Config) *dig.Container {
	t.Helper()

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(logx.Nop))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))

	stubConnect := func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error) {
		t.Fatal("dbConnect must not be called without remote config")
		return nil, nil
	}
	require.NoError(t, registerStorage(c, stubConnect))
	return c
}

func TestProvideAll_Success(t *testing.T) {
	t.Parallel()

	c := dig.New()

	err := provideAll(c,
		func() context.Context { return context.Background() },
		func() time.Duration { return 3 * time.Second },
	)
	require.NoError(t, err)

	err = c.Invoke(func(ctx context.Context, d time.Duration) {
		require.NotNil(t, ctx)
		require.Equal(t, 3*time.Second, d)
	})
	require.NoError(t, err)
}

func TestProvideAll_InvalidProvider(t *testing.T) {
	t.Parallel()

	c := dig.New()

	type bad struct{}
	err := provideAll(c, bad{})
	require.Error(t, err)
}

func TestRegisterCore_ProvidesDependencies(t *testing.T) {
	t.Parallel()

	c := dig.New()
	ctx := context.Background()

	require.NoError(t, registerCore(c, ctx))

	err := c.Invoke(func(gotCtx context.Context, logger logx.Logger) {
		require.Equal(t, ctx, gotCtx)
		require.NotNil(t, logger)
	})
	require.NoError(t, err)
}

func TestRegisterStorage_LocalOnlyWithoutRemoteConfig(t *testing.T) {
	t.Parallel()

	c := setupStorageContainer(t, localOnlyConfig(t))

	err := c.Invoke(func(gw *storage.Gateway) {
		require.NotNil(t, gw)
		require.False(t, gw.RemoteEnabled())
		require.Equal(t, "local-only", gw.Mode())
	})
	require.NoError(t, err)
}

func TestRegisterStorage_UsesDbConnectWhenRemoteConfigured(t *testing.T) {
	t.Parallel()

	cfg := localOnlyConfig(t)
	cfg.Remote = config.Remote{URL: "postgres://db.example/rodovar", Key: "k3y"}

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(logx.Nop))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))

	calls := 0
	stubConnect := func(_ context.Context, _ logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
		calls++
		require.Equal(t, cfg.Remote.DSN(), dsn)
		require.Equal(t, 10, retries)
		require.Equal(t, time.Second, delay)
		// a nil pool keeps the gateway in local-only mode without a live db
		return nil, nil
	}
	require.NoError(t, registerStorage(c, stubConnect))

	err := c.Invoke(func(pool *pgxpool.Pool) {
		require.Nil(t, pool)
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestRegisterStorage_RemoteUnreachableFallsBackLocalOnly(t *testing.T) {
	t.Parallel()

	cfg := localOnlyConfig(t)
	cfg.Remote = config.Remote{URL: "postgres://db.example/rodovar", Key: "k3y"}

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(logx.Nop))
	require.NoError(t, c.Provide(func() *config.Config { return cfg }))

	stubConnect := func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error) {
		return nil, errors.New("dial tcp: connection refused")
	}
	require.NoError(t, registerStorage(c, stubConnect))

	type counterIn struct {
		dig.In

		RemoteErrs prometheus.Counter `name:"storage_remote_errors_total"`
	}
	var before float64
	require.NoError(t, c.Invoke(func(in counterIn) {
		before = testutil.ToFloat64(in.RemoteErrs)
	}))

	err := c.Invoke(func(gw *storage.Gateway) {
		require.NotNil(t, gw)
		require.False(t, gw.RemoteEnabled())
		require.Equal(t, "local-only", gw.Mode())
	})
	require.NoError(t, err)

	require.NoError(t, c.Invoke(func(in counterIn) {
		require.Equal(t, before+1, testutil.ToFloat64(in.RemoteErrs))
	}))
}

func TestRegisterDomainServices_ProvidesServices(t *testing.T) {
	t.Parallel()

	c := setupStorageContainer(t, localOnlyConfig(t))
	require.NoError(t, registerDomainServices(c))

	err := c.Invoke(func(
		trackingSvc *tracking.Service,
		authSvc *auth.Service,
		seeder *seed.Seeder,
		processor *locations.Processor,
	) {
		require.NotNil(t, trackingSvc)
		require.NotNil(t, authSvc)
		require.NotNil(t, seeder)
		require.NotNil(t, processor)
	})
	require.NoError(t, err)
}

func TestContainerBuilder_MustBuild_LogsFatalOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	builder := NewContainerBuilder().
		WithDBConnect(func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error) {
			return nil, nil
		}).
		WithLogFatalf(func(format string, args ...interface{}) {
			require.FailNowf(t, "logFatalf must not be called", format, args...)
		})

	c := builder.MustBuild(ctx)
	require.NotNil(t, c)
}
