package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/apperr"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
)

type mockStore struct {
	listFn   func(ctx context.Context) (map[string]domain.Shipment, error)
	getFn    func(ctx context.Context, code string) (*domain.Shipment, error)
	saveFn   func(ctx context.Context, s domain.Shipment) error
	deleteFn func(ctx context.Context, code string) error
	findFn   func(ctx context.Context, phone string) (*domain.Shipment, error)
}

func (m *mockStore) ListShipments(ctx context.Context) (map[string]domain.Shipment, error) {
	return m.listFn(ctx)
}

func (m *mockStore) GetShipment(ctx context.Context, code string) (*domain.Shipment, error) {
	return m.getFn(ctx, code)
}

func (m *mockStore) SaveShipment(ctx context.Context, s domain.Shipment) error {
	return m.saveFn(ctx, s)
}

func (m *mockStore) DeleteShipment(ctx context.Context, code string) error {
	return m.deleteFn(ctx, code)
}

func (m *mockStore) FindShipmentByDriverPhone(ctx context.Context, phone string) (*domain.Shipment, error) {
	return m.findFn(ctx, phone)
}

type stubResolver struct {
	byPlace map[string]domain.Coordinates
}

func (r *stubResolver) Resolve(_ context.Context, place, _, _ string) domain.Coordinates {
	if c, ok := r.byPlace[place]; ok {
		return c
	}
	return domain.ZeroCoordinates
}

type stubCodes struct {
	code string
	err  error
}

func (c *stubCodes) Generate(context.Context) (string, error) { return c.code, c.err }

func fixedClock() time.Time {
	return time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

var routeCoords = map[string]domain.Coordinates{
	"São Paulo":      {Lat: -23.5505, Lng: -46.6333},
	"Rio de Janeiro": {Lat: -22.9068, Lng: -43.1729},
	"Aparecida":      {Lat: -22.8465, Lng: -45.2341},
}

func TestCreate_GeneratesCodeAndProgress(t *testing.T) {
	t.Parallel()

	var saved domain.Shipment
	store := &mockStore{
		saveFn: func(_ context.Context, s domain.Shipment) error {
			saved = s
			return nil
		},
	}
	svc := NewService(store, &stubResolver{byPlace: routeCoords}, &stubCodes{code: "RODO-42424"})
	svc.now = fixedClock

	got, err := svc.Create(context.Background(), CreateInput{
		Origin:       "São Paulo",
		Destination:  "Rio de Janeiro",
		CurrentCity:  "Aparecida",
		CurrentState: "SP",
		DriverID:     "d1",
		DriverName:   "Carlos Mendes",
		CreatedBy:    "Admin",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Code != "RODO-42424" {
		t.Fatalf("expected generated code, got %q", got.Code)
	}
	if got.Status != domain.StatusPending {
		t.Fatalf("expected default PENDING status, got %q", got.Status)
	}
	if got.Progress <= 0 || got.Progress >= 100 {
		t.Fatalf("mid-route progress expected in (0,100), got %d", got.Progress)
	}
	if got.LastUpdate != "10:30 - 15/06/2024" {
		t.Fatalf("unexpected lastUpdate %q", got.LastUpdate)
	}
	if saved.Code != got.Code {
		t.Fatalf("created shipment was not saved, saved=%q", saved.Code)
	}
}

func TestCreate_NoCurrentCityStartsAtOrigin(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		saveFn: func(context.Context, domain.Shipment) error { return nil },
	}
	svc := NewService(store, &stubResolver{byPlace: routeCoords}, &stubCodes{code: "RODO-11111"})
	svc.now = fixedClock

	got, err := svc.Create(context.Background(), CreateInput{
		Origin:      "São Paulo",
		Destination: "Rio de Janeiro",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CurrentLocation.Coordinates != routeCoords["São Paulo"] {
		t.Fatalf("expected origin coordinates, got %#v", got.CurrentLocation.Coordinates)
	}
	if got.Progress != 0 {
		t.Fatalf("progress at origin must be 0, got %d", got.Progress)
	}
}

func TestCreate_UnresolvedRouteHasZeroProgress(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		saveFn: func(context.Context, domain.Shipment) error { return nil },
	}
	// resolver knows nothing: everything resolves to the zero sentinel
	svc := NewService(store, &stubResolver{}, &stubCodes{code: "RODO-22222"})
	svc.now = fixedClock

	got, err := svc.Create(context.Background(), CreateInput{
		Origin:      "Unknownville",
		Destination: "Nowhereton",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Progress != 0 {
		t.Fatalf("unresolved route must yield 0 progress, got %d", got.Progress)
	}
}

func TestCreate_Invalid(t *testing.T) {
	t.Parallel()

	svc := NewService(&mockStore{}, &stubResolver{}, &stubCodes{})

	_, err := svc.Create(context.Background(), CreateInput{Destination: "Rio de Janeiro"})
	if !errors.Is(err, apperr.Invalid) {
		t.Fatalf("expected Invalid for missing origin, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		Origin: "São Paulo", Destination: "Rio de Janeiro", Status: "SHIPPED",
	})
	if !errors.Is(err, apperr.Invalid) {
		t.Fatalf("expected Invalid for unknown status, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		getFn: func(context.Context, string) (*domain.Shipment, error) { return nil, nil },
	}
	svc := NewService(store, &stubResolver{}, &stubCodes{})

	_, err := svc.Get(context.Background(), "RODO-00000")
	if !errors.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUpdateLocation_RecomputesProgress(t *testing.T) {
	t.Parallel()

	existing := domain.Shipment{
		Code:                   "RODO-90001",
		Status:                 domain.StatusInTransit,
		Origin:                 "São Paulo",
		Destination:            "Rio de Janeiro",
		DestinationCoordinates: routeCoords["Rio de Janeiro"],
		Progress:               5,
	}
	var saved domain.Shipment
	store := &mockStore{
		getFn: func(_ context.Context, code string) (*domain.Shipment, error) {
			cp := existing
			return &cp, nil
		},
		saveFn: func(_ context.Context, s domain.Shipment) error {
			saved = s
			return nil
		},
	}
	svc := NewService(store, &stubResolver{byPlace: routeCoords}, &stubCodes{})
	svc.now = fixedClock

	got, err := svc.UpdateLocation(context.Background(), "RODO-90001", LocationUpdate{
		City:      "Aparecida",
		State:     "SP",
		UpdatedBy: "Carlos Mendes",
		Live:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Progress <= 5 || got.Progress >= 100 {
		t.Fatalf("expected recomputed mid-route progress, got %d", got.Progress)
	}
	if !got.IsLive {
		t.Fatal("live update must mark the shipment live")
	}
	if got.CurrentLocation.City != "Aparecida" {
		t.Fatalf("unexpected current city %q", got.CurrentLocation.City)
	}
	if saved.Progress != got.Progress {
		t.Fatal("updated shipment was not saved")
	}
}

func TestUpdateLocation_ExplicitCoordinatesSkipResolver(t *testing.T) {
	t.Parallel()

	existing := domain.Shipment{
		Code:                   "RODO-90002",
		Origin:                 "São Paulo",
		Destination:            "Rio de Janeiro",
		DestinationCoordinates: routeCoords["Rio de Janeiro"],
	}
	store := &mockStore{
		getFn: func(context.Context, string) (*domain.Shipment, error) {
			cp := existing
			return &cp, nil
		},
		saveFn: func(context.Context, domain.Shipment) error { return nil },
	}
	svc := NewService(store, &stubResolver{byPlace: routeCoords}, &stubCodes{})
	svc.now = fixedClock

	coords := domain.Coordinates{Lat: -22.8465, Lng: -45.2341}
	got, err := svc.UpdateLocation(context.Background(), "RODO-90002", LocationUpdate{
		City:        "Aparecida",
		Coordinates: coords,
		UpdatedBy:   "gps-feed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CurrentLocation.Coordinates != coords {
		t.Fatalf("expected supplied coordinates kept, got %#v", got.CurrentLocation.Coordinates)
	}
}

func TestUpdateStatus_DeliveredForcesFullProgress(t *testing.T) {
	t.Parallel()

	existing := domain.Shipment{
		Code:     "RODO-90003",
		Status:   domain.StatusInTransit,
		Progress: 60,
		IsLive:   true,
	}
	var saved domain.Shipment
	store := &mockStore{
		getFn: func(context.Context, string) (*domain.Shipment, error) {
			cp := existing
			return &cp, nil
		},
		saveFn: func(_ context.Context, s domain.Shipment) error {
			saved = s
			return nil
		},
	}
	svc := NewService(store, &stubResolver{}, &stubCodes{})
	svc.now = fixedClock

	got, err := svc.UpdateStatus(context.Background(), "RODO-90003", domain.StatusDelivered, "Admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Progress != 100 {
		t.Fatalf("delivered shipment must report 100, got %d", got.Progress)
	}
	if got.IsLive {
		t.Fatal("delivered shipment must not stay live")
	}
	if saved.Status != domain.StatusDelivered {
		t.Fatal("status change was not saved")
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc := NewService(&mockStore{}, &stubResolver{}, &stubCodes{})

	_, err := svc.UpdateStatus(context.Background(), "RODO-90003", "LOST", "Admin")
	if !errors.Is(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}
}

func TestTrackByPhone(t *testing.T) {
	t.Parallel()

	active := &domain.Shipment{Code: "RODO-90001", Status: domain.StatusInTransit}
	store := &mockStore{
		findFn: func(_ context.Context, phone string) (*domain.Shipment, error) {
			if phone == "+55 11 99991234" {
				return active, nil
			}
			return nil, nil
		},
	}
	svc := NewService(store, &stubResolver{}, &stubCodes{})

	got, err := svc.TrackByPhone(context.Background(), "+55 11 99991234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != active {
		t.Fatalf("expected active shipment, got %#v", got)
	}

	_, err = svc.TrackByPhone(context.Background(), "+55 99 00000000")
	if !errors.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	_, err = svc.TrackByPhone(context.Background(), "no digits")
	if !errors.Is(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}
}
