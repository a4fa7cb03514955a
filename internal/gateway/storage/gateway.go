package storage

import (
	"context"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/repository"
)

// Gateway orchestrates reads and writes across the remote backend and the
// local mirror. Policy: remote-preferred reads with transparent local
// fallback; every write is attempted remotely (when configured) and is
// always applied locally regardless of the remote outcome, so the local
// store is an eventually-consistent mirror of locally-originated writes.
//
// A remote failure is never surfaced to the caller.
type Gateway struct {
	remote     RemoteStore
	local      *repository.Local
	logger     logx.Logger
	fallbacks  counter
	remoteErrs counter
}

// New creates a Gateway. remote may be nil, which puts the gateway in
// local-only mode; that is a supported configuration, not a degraded one.
func New(remote RemoteStore, local *repository.Local, logger logx.Logger, fallbacks, remoteErrs counter) *Gateway {
	g := &Gateway{
		remote:     remote,
		local:      local,
		logger:     logger,
		fallbacks:  fallbacks,
		remoteErrs: remoteErrs,
	}
	g.logger.Info("storage gateway ready", logx.String("mode", g.Mode()))
	return g
}

// RemoteEnabled reports whether a remote backend is configured.
func (g *Gateway) RemoteEnabled() bool { return g.remote != nil }

// Mode names the active storage mode for logs and the health endpoint.
func (g *Gateway) Mode() string {
	if g.remote != nil {
		return "remote"
	}
	return "local-only"
}

// fellBack records a remote read failure that was recovered locally.
func (g *Gateway) fellBack(op string, err error) {
	if g.fallbacks != nil {
		g.fallbacks.Inc()
	}
	g.logger.Warn("remote read failed, serving local mirror",
		logx.String("op", op),
		logx.Any("err", err),
	)
}

// remoteWrite sends a write to the remote backend, fire-and-forget with
// respect to the local mirror: an error is counted and logged, never returned.
func (g *Gateway) remoteWrite(op, key string, fn func() error) {
	if g.remote == nil {
		return
	}
	if err := fn(); err != nil {
		if g.remoteErrs != nil {
			g.remoteErrs.Inc()
		}
		g.logger.Warn("remote write failed, local mirror keeps the record",
			logx.String("op", op),
			logx.String("key", key),
			logx.Any("err", err),
		)
	}
}

// ListUsers returns every admin user record.
func (g *Gateway) ListUsers(ctx context.Context) ([]domain.AdminUser, error) {
	if g.remote != nil {
		users, err := g.remote.ListUsers(ctx)
		if err == nil {
			return users, nil
		}
		g.fellBack("list users", err)
	}
	return g.local.ListUsers(ctx)
}

// SaveUser upserts an admin user record by username, last-writer-wins.
func (g *Gateway) SaveUser(ctx context.Context, u domain.AdminUser) error {
	g.remoteWrite("upsert user", u.Username, func() error {
		return g.remote.UpsertUser(ctx, u)
	})
	return g.local.UpsertUser(ctx, u)
}

// DeleteUser removes an admin user record by username. It refuses (no-op,
// returns false) when removing the named user would leave zero records and
// that user is the default admin account.
func (g *Gateway) DeleteUser(ctx context.Context, username string) (bool, error) {
	users, err := g.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	if username == domain.DefaultAdminUsername && len(users) <= 1 {
		g.logger.Warn("refusing to delete the last admin account",
			logx.String("username", username))
		return false, nil
	}
	g.remoteWrite("delete user", username, func() error {
		return g.remote.DeleteUser(ctx, username)
	})
	if err := g.local.DeleteUser(ctx, username); err != nil {
		return false, err
	}
	return true, nil
}

// ListDrivers returns every driver record.
func (g *Gateway) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	if g.remote != nil {
		drivers, err := g.remote.ListDrivers(ctx)
		if err == nil {
			return drivers, nil
		}
		g.fellBack("list drivers", err)
	}
	return g.local.ListDrivers(ctx)
}

// SaveDriver upserts a driver record by id, last-writer-wins.
func (g *Gateway) SaveDriver(ctx context.Context, d domain.Driver) error {
	g.remoteWrite("upsert driver", d.ID, func() error {
		return g.remote.UpsertDriver(ctx, d)
	})
	return g.local.UpsertDriver(ctx, d)
}

// DeleteDriver removes a driver record by id.
func (g *Gateway) DeleteDriver(ctx context.Context, id string) error {
	g.remoteWrite("delete driver", id, func() error {
		return g.remote.DeleteDriver(ctx, id)
	})
	return g.local.DeleteDriver(ctx, id)
}

// ListShipments returns the full shipment map keyed by code.
func (g *Gateway) ListShipments(ctx context.Context) (map[string]domain.Shipment, error) {
	if g.remote != nil {
		all, err := g.remote.ListShipments(ctx)
		if err == nil {
			return all, nil
		}
		g.fellBack("list shipments", err)
	}
	return g.local.ListShipments(ctx)
}

// GetShipment is the optimized point lookup by code. A miss on a healthy
// remote is a successful read: the local mirror is not consulted.
func (g *Gateway) GetShipment(ctx context.Context, code string) (*domain.Shipment, error) {
	if g.remote != nil {
		s, err := g.remote.GetShipment(ctx, code)
		if err == nil {
			return s, nil
		}
		g.fellBack("get shipment", err)
	}
	return g.local.GetShipment(ctx, code)
}

// SaveShipment upserts a shipment record by code, last-writer-wins.
func (g *Gateway) SaveShipment(ctx context.Context, s domain.Shipment) error {
	g.remoteWrite("upsert shipment", s.Code, func() error {
		return g.remote.UpsertShipment(ctx, s)
	})
	return g.local.UpsertShipment(ctx, s)
}

// DeleteShipment removes a shipment record by code.
func (g *Gateway) DeleteShipment(ctx context.Context, code string) error {
	g.remoteWrite("delete shipment", code, func() error {
		return g.remote.DeleteShipment(ctx, code)
	})
	return g.local.DeleteShipment(ctx, code)
}

// FindShipmentByDriverPhone matches a driver by phone (digits-only mutual
// containment, tolerating country-code prefixes) and returns that driver's
// first shipment that has not been delivered yet. Nil when no driver or no
// qualifying shipment exists.
func (g *Gateway) FindShipmentByDriverPhone(ctx context.Context, phone string) (*domain.Shipment, error) {
	drivers, err := g.ListDrivers(ctx)
	if err != nil {
		return nil, err
	}
	var driver *domain.Driver
	for i := range drivers {
		if domain.PhoneMatches(drivers[i].Phone, phone) {
			driver = &drivers[i]
			break
		}
	}
	if driver == nil {
		return nil, nil
	}

	all, err := g.ListShipments(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range all {
		if s.DriverID == driver.ID && s.Status != domain.StatusDelivered {
			found := s
			return &found, nil
		}
	}
	return nil, nil
}
