package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/config"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/gateway/storage"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/geo"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/http/handlers"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/http/middleware/ratelimit"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/http/pprofserver"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/http/router"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/repository"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/seed"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/auth"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/codegen"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/locations"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/tracking"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the remote database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP service container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the location feed worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStorage(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStorage(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

type gatewayIn struct {
	dig.In

	Remote     storage.RemoteStore
	Local      *repository.Local
	Logger     logx.Logger
	Fallbacks  prometheus.Counter `name:"storage_remote_fallbacks_total"`
	RemoteErrs prometheus.Counter `name:"storage_remote_errors_total"`
}

type poolIn struct {
	dig.In

	Ctx        context.Context
	Cfg        *config.Config
	Logger     logx.Logger
	RemoteErrs prometheus.Counter `name:"storage_remote_errors_total"`
}

func registerStorage(
	container *dig.Container,
	dbConnect func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	// an unreachable remote degrades to local-only, it never blocks startup
	providePool := func(in poolIn) *pgxpool.Pool {
		if !in.Cfg.Remote.Enabled() {
			in.Logger.Info("remote db not configured, running local-only")
			return nil
		}
		pool, err := dbConnect(in.Ctx, in.Logger, in.Cfg.Remote.DSN(), 10, time.Second)
		if err != nil {
			in.Logger.Error("remote db unreachable, running local-only", logx.Any("err", err))
			in.RemoteErrs.Inc()
			return nil
		}
		return pool
	}
	provideRemote := func(ctx context.Context, pool *pgxpool.Pool, logger logx.Logger) storage.RemoteStore {
		if pool == nil {
			return nil
		}
		remote := repository.NewRemote(pool)
		if err := remote.Migrate(ctx); err != nil {
			// the gateway absorbs remote failures per-operation
			logger.Warn("remote migrate failed", logx.Any("err", err))
		}
		return remote
	}
	provideLocal := func(cfg *config.Config) (*repository.Local, error) {
		return repository.NewLocal(cfg.DataDir)
	}
	provideGateway := func(in gatewayIn) *storage.Gateway {
		return storage.New(in.Remote, in.Local, in.Logger, in.Fallbacks, in.RemoteErrs)
	}
	return provideAll(container,
		providePool,
		provideRemote,
		provideLocal,
		provideMetrics,
		provideGateway,
	)
}

type resolverIn struct {
	dig.In

	Cfg      *config.Config
	Logger   logx.Logger
	Failures prometheus.Counter `name:"geocode_failures_total"`
}

type processorIn struct {
	dig.In

	Tracking *tracking.Service
	Logger   logx.Logger
	Retries  prometheus.Counter `name:"location_event_retries_total"`
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		func(in resolverIn) *geo.Resolver {
			return geo.NewResolver(in.Cfg.Geo.BaseURL, in.Cfg.Geo.Timeout, in.Logger, in.Failures)
		},
		func(gw *storage.Gateway) *codegen.Generator {
			return codegen.New(gw)
		},
		func(gw *storage.Gateway, resolver *geo.Resolver, codes *codegen.Generator) *tracking.Service {
			return tracking.NewService(gw, resolver, codes)
		},
		func(gw *storage.Gateway, logger logx.Logger) *auth.Service {
			return auth.NewService(gw, logger)
		},
		func(gw *storage.Gateway, logger logx.Logger) *seed.Seeder {
			return seed.New(gw, logger)
		},
		func(in processorIn) *locations.Processor {
			return locations.NewProcessor(in.Tracking, in.Logger, in.Retries, locations.DefaultRetryConfig())
		},
	)
}

type routerIn struct {
	dig.In

	Base      *handlers.Handlers
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Drivers   *handlers.DriverHandler
	Shipments *handlers.ShipmentHandler
	Track     *handlers.TrackHandler
	Logger    logx.Logger
	RateLimit *ratelimit.Middleware
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(in routerIn) http.Handler {
		return router.New(router.Deps{
			Base:       in.Base,
			Auth:       in.Auth,
			Users:      in.Users,
			Drivers:    in.Drivers,
			Shipments:  in.Shipments,
			Track:      in.Track,
			Logger:     in.Logger,
			TrackLimit: in.RateLimit.Handler(),
		})
	}
	pprofProvider := func(cfg *config.Config) *http.Server {
		if !cfg.Pprof.Enabled {
			return nil
		}
		return &http.Server{
			Addr:              cfg.Pprof.Addr,
			Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	if err := container.Provide(pprofProvider, dig.Name("pprof_server")); err != nil {
		return fmt.Errorf("provide pprof server: %w", err)
	}
	return provideAll(container,
		func(logger logx.Logger, gw *storage.Gateway) *handlers.Handlers {
			return handlers.New(logger, gw)
		},
		handlers.NewAuthUsecase,
		handlers.NewAuthHandler,
		handlers.NewUserHandler,
		handlers.NewTrackingUsecase,
		handlers.NewShipmentHandler,
		handlers.NewTrackHandler,
		handlers.NewDriverStore,
		handlers.NewDriverHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		makeLocationsHandler,
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}
