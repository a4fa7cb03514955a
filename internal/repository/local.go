package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// File names of the local store, one JSON document per logical table.
const (
	shipmentsFile = "rodovar_shipments_db_v1"
	usersFile     = "rodovar_users_db_v1"
	driversFile   = "rodovar_drivers_db_v1"
)

// Local is the durable process-local store: the fallback for reads when the
// remote backend is down and the unconditional mirror for every write.
// Writes go through a temp file and an atomic rename.
type Local struct {
	dir string
	mu  sync.Mutex
}

// NewLocal creates a Local store rooted at dir, creating it if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local store dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// ListUsers returns every admin user record. A missing users file is seeded
// with the default admin account so that one always exists.
func (l *Local) ListUsers(_ context.Context) ([]domain.AdminUser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var users []domain.AdminUser
	found, err := l.read(usersFile, &users)
	if err != nil {
		return nil, err
	}
	if !found {
		users = []domain.AdminUser{{
			Username: domain.DefaultAdminUsername,
			Password: domain.RecoveryPassword,
		}}
		if err := l.write(usersFile, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// UpsertUser replaces-by-key or appends an admin user record.
func (l *Local) UpsertUser(_ context.Context, u domain.AdminUser) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var users []domain.AdminUser
	if _, err := l.read(usersFile, &users); err != nil {
		return err
	}
	out := users[:0]
	for _, existing := range users {
		if existing.Username != u.Username {
			out = append(out, existing)
		}
	}
	out = append(out, u)
	return l.write(usersFile, out)
}

// DeleteUser removes an admin user record by username. The last-admin guard
// lives in the gateway, not here.
func (l *Local) DeleteUser(_ context.Context, username string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var users []domain.AdminUser
	if _, err := l.read(usersFile, &users); err != nil {
		return err
	}
	out := users[:0]
	for _, u := range users {
		if u.Username != username {
			out = append(out, u)
		}
	}
	return l.write(usersFile, out)
}

// ListDrivers returns every driver record.
func (l *Local) ListDrivers(_ context.Context) ([]domain.Driver, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	drivers := make([]domain.Driver, 0)
	if _, err := l.read(driversFile, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// UpsertDriver replaces-by-key or appends a driver record.
func (l *Local) UpsertDriver(_ context.Context, d domain.Driver) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var drivers []domain.Driver
	if _, err := l.read(driversFile, &drivers); err != nil {
		return err
	}
	replaced := false
	for i := range drivers {
		if drivers[i].ID == d.ID {
			drivers[i] = d
			replaced = true
			break
		}
	}
	if !replaced {
		drivers = append(drivers, d)
	}
	return l.write(driversFile, drivers)
}

// DeleteDriver removes a driver record by id.
func (l *Local) DeleteDriver(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var drivers []domain.Driver
	if _, err := l.read(driversFile, &drivers); err != nil {
		return err
	}
	out := drivers[:0]
	for _, d := range drivers {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return l.write(driversFile, out)
}

// ListShipments returns the full shipment map keyed by code.
func (l *Local) ListShipments(_ context.Context) (map[string]domain.Shipment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readShipments()
}

// GetShipment returns a single shipment by code, or nil when absent.
func (l *Local) GetShipment(_ context.Context, code string) (*domain.Shipment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.readShipments()
	if err != nil {
		return nil, err
	}
	s, ok := all[code]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// UpsertShipment replaces-by-key or inserts a shipment record.
func (l *Local) UpsertShipment(_ context.Context, s domain.Shipment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.readShipments()
	if err != nil {
		return err
	}
	all[s.Code] = s
	return l.write(shipmentsFile, all)
}

// DeleteShipment removes a shipment record by code.
func (l *Local) DeleteShipment(_ context.Context, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.readShipments()
	if err != nil {
		return err
	}
	delete(all, code)
	return l.write(shipmentsFile, all)
}

func (l *Local) readShipments() (map[string]domain.Shipment, error) {
	all := make(map[string]domain.Shipment)
	if _, err := l.read(shipmentsFile, &all); err != nil {
		return nil, err
	}
	return all, nil
}

// read decodes the named table file into v. It reports false when the file
// does not exist yet; that is an empty table, not an error.
func (l *Local) read(name string, v any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read local table %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode local table %s: %w", name, err)
	}
	return true, nil
}

func (l *Local) write(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode local table %s: %w", name, err)
	}
	path := filepath.Join(l.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write local table %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit local table %s: %w", name, err)
	}
	return nil
}
