package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

// Remote is the network-backed store. Each entity kind maps to one table
// with a denormalized key column and the full record serialized into a
// JSONB payload column.
type Remote struct{ db *pgxpool.Pool }

// NewRemote creates a new Remote over an established pool.
func NewRemote(db *pgxpool.Pool) *Remote {
	if db == nil {
		return nil
	}
	return &Remote{db: db}
}

// Migrate creates the three entity tables if they do not exist.
func (r *Remote) Migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    data     JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS drivers (
    id   TEXT PRIMARY KEY,
    data JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS shipments (
    code TEXT PRIMARY KEY,
    data JSONB NOT NULL
);`
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate remote schema: %w", err)
	}
	return nil
}

// ListUsers returns every admin user record.
func (r *Remote) ListUsers(ctx context.Context) ([]domain.AdminUser, error) {
	rows, err := r.db.Query(ctx, `SELECT data FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := make([]domain.AdminUser, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var u domain.AdminUser
		if err := json.Unmarshal(raw, &u); err != nil {
			return nil, fmt.Errorf("decode user payload: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpsertUser replaces-by-key or inserts an admin user record.
func (r *Remote) UpsertUser(ctx context.Context, u domain.AdminUser) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user payload: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO users(username, data) VALUES($1, $2)
         ON CONFLICT (username) DO UPDATE SET data = EXCLUDED.data`,
		u.Username, raw)
	if err != nil {
		return fmt.Errorf("upsert user %q: %w", u.Username, err)
	}
	return nil
}

// DeleteUser removes an admin user record by username.
func (r *Remote) DeleteUser(ctx context.Context, username string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM users WHERE username=$1`, username); err != nil {
		return fmt.Errorf("delete user %q: %w", username, err)
	}
	return nil
}

// ListDrivers returns every driver record.
func (r *Remote) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx, `SELECT data FROM drivers`)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Driver, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var d domain.Driver
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode driver payload: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpsertDriver replaces-by-key or inserts a driver record.
func (r *Remote) UpsertDriver(ctx context.Context, d domain.Driver) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode driver payload: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO drivers(id, data) VALUES($1, $2)
         ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data`,
		d.ID, raw)
	if err != nil {
		return fmt.Errorf("upsert driver %q: %w", d.ID, err)
	}
	return nil
}

// DeleteDriver removes a driver record by id.
func (r *Remote) DeleteDriver(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM drivers WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete driver %q: %w", id, err)
	}
	return nil
}

// ListShipments returns the full shipment table keyed by code.
func (r *Remote) ListShipments(ctx context.Context) (map[string]domain.Shipment, error) {
	rows, err := r.db.Query(ctx, `SELECT code, data FROM shipments`)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Shipment)
	for rows.Next() {
		var (
			code string
			raw  []byte
		)
		if err := rows.Scan(&code, &raw); err != nil {
			return nil, err
		}
		var s domain.Shipment
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode shipment payload %q: %w", code, err)
		}
		out[code] = s
	}
	return out, rows.Err()
}

// GetShipment returns a single shipment by code, or nil when absent.
func (r *Remote) GetShipment(ctx context.Context, code string) (*domain.Shipment, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM shipments WHERE code=$1`, code).Scan(&raw)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment %q: %w", code, err)
	}
	var s domain.Shipment
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode shipment payload %q: %w", code, err)
	}
	return &s, nil
}

// UpsertShipment replaces-by-key or inserts a shipment record.
func (r *Remote) UpsertShipment(ctx context.Context, s domain.Shipment) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode shipment payload: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO shipments(code, data) VALUES($1, $2)
         ON CONFLICT (code) DO UPDATE SET data = EXCLUDED.data`,
		s.Code, raw)
	if err != nil {
		return fmt.Errorf("upsert shipment %q: %w", s.Code, err)
	}
	return nil
}

// DeleteShipment removes a shipment record by code.
func (r *Remote) DeleteShipment(ctx context.Context, code string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM shipments WHERE code=$1`, code); err != nil {
		return fmt.Errorf("delete shipment %q: %w", code, err)
	}
	return nil
}
