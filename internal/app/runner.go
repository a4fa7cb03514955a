package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/config"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/seed"
)

// Runner starts the HTTP service from a built DI container.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a Runner with the default run function.
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun runs the service and panics on unexpected errors.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, context.Canceled):
		_ = container.Invoke(func(logger logx.Logger) {
			logger.Info("shutdown requested, exiting")
		})
	case errors.Is(err, context.DeadlineExceeded):
		_ = container.Invoke(func(logger logx.Logger) {
			logger.Error("startup aborted: startup timeout exceeded")
		})
	default:
		panic(err)
	}
}

type runIn struct {
	dig.In

	Ctx    context.Context
	Cfg    *config.Config
	Logger logx.Logger
	Pool   *pgxpool.Pool
	Server *http.Server
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
	Seeder *seed.Seeder
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		if in.Cfg.SeedDemo {
			if err := in.Seeder.Populate(in.Ctx); err != nil {
				in.Logger.Error("demo seed failed", logx.Any("err", err))
			}
		}

		startServer(in.Server, in.Logger)
		startPprofServer(in.Pprof, in.Logger)

		<-in.Ctx.Done()
		in.Logger.Info("shutting down")

		gracefulShutdown(in.Server, in.Logger, 15*time.Second)
		closeResources(in.Pool, in.Server, in.Pprof, in.Logger)
		return nil
	})
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen error", logx.Any("err", err))
		}
	}()
}

func startPprofServer(server *http.Server, logger logx.Logger) {
	if server == nil {
		return
	}
	go func() {
		logger.Info("pprof listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof listen error", logx.Any("err", err))
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}

func closeResources(pool *pgxpool.Pool, server, pprof *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Any("err", err))
	}
	if pprof != nil {
		if err := pprof.Close(); err != nil {
			logger.Error("pprof close error", logx.Any("err", err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
