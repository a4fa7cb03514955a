package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/logx"
)

const dateLayout = "02/01/2006"

// Seeder populates demo data. Every record is created only when absent, so
// running it repeatedly is safe.
type Seeder struct {
	store  store
	logger logx.Logger
	now    func() time.Time
}

// New creates a Seeder.
func New(store store, logger logx.Logger) *Seeder {
	return &Seeder{store: store, logger: logger, now: time.Now}
}

// Populate inserts the demo user, drivers and shipments that are missing.
func (s *Seeder) Populate(ctx context.Context) error {
	s.logger.Info("checking demo data")

	if err := s.populateUser(ctx); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	if err := s.populateDrivers(ctx); err != nil {
		return fmt.Errorf("seed drivers: %w", err)
	}
	if err := s.populateShipments(ctx); err != nil {
		return fmt.Errorf("seed shipments: %w", err)
	}
	return nil
}

func (s *Seeder) populateUser(ctx context.Context) error {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Username == "Jairo" {
			return nil
		}
	}
	s.logger.Info("creating demo user", logx.String("username", "Jairo"))
	return s.store.SaveUser(ctx, domain.AdminUser{Username: "Jairo", Password: "Danone01#@"})
}

func demoDrivers() []domain.Driver {
	return []domain.Driver{
		{ID: "demo-driver-01", Name: "Carlos Mendes", Phone: "551199991234"},
		{ID: "demo-driver-02", Name: "Roberto Santos", Phone: "552198885678"},
		{ID: "demo-driver-03", Name: "Fernanda Lima", Phone: "553197774321"},
	}
}

func (s *Seeder) populateDrivers(ctx context.Context) error {
	current, err := s.store.ListDrivers(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(current))
	for _, d := range current {
		have[d.ID] = true
	}
	for _, d := range demoDrivers() {
		if have[d.ID] {
			continue
		}
		s.logger.Info("creating demo driver", logx.String("name", d.Name))
		if err := s.store.SaveDriver(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) demoShipments() []domain.Shipment {
	today := s.now().Format(dateLayout)
	tomorrow := s.now().Add(24 * time.Hour).Format(dateLayout)
	inTwoDays := s.now().Add(48 * time.Hour).Format(dateLayout)

	return []domain.Shipment{
		{
			Code:   "RODO-90001",
			Status: domain.StatusInTransit,
			CurrentLocation: domain.CurrentLocation{
				City: "Aparecida", State: "SP", Address: "Rod. Pres. Dutra, Km 71",
				Coordinates: domain.Coordinates{Lat: -22.8465, Lng: -45.2341},
			},
			Origin:                 "São Paulo",
			Destination:            "Rio de Janeiro",
			DestinationAddress:     "Av. Brasil, 500, Rio de Janeiro",
			DestinationCoordinates: domain.Coordinates{Lat: -22.8953, Lng: -43.2268},
			LastUpdate:             "10:30 - " + today,
			LastUpdatedBy:          "Sistema",
			EstimatedDelivery:      tomorrow,
			Message:                "Carga em deslocamento na via Dutra.",
			Notes:                  "Carga frágil. Eletrônicos.",
			Progress:               45,
			DriverID:               "demo-driver-01",
			DriverName:             "Carlos Mendes",
			IsLive:                 true,
		},
		{
			Code:   "RODO-90002",
			Status: domain.StatusStopped,
			CurrentLocation: domain.CurrentLocation{
				City: "Joinville", State: "SC", Address: "Posto Rudnick",
				Coordinates: domain.Coordinates{Lat: -26.3045, Lng: -48.8487},
			},
			Origin:                 "Curitiba",
			Destination:            "Florianópolis",
			DestinationAddress:     "Centro Logístico Floripa",
			DestinationCoordinates: domain.Coordinates{Lat: -27.5954, Lng: -48.5480},
			LastUpdate:             "12:15 - " + today,
			LastUpdatedBy:          "Roberto Santos",
			EstimatedDelivery:      inTwoDays,
			Message:                "Parada para almoço e abastecimento.",
			Notes:                  "Transporte de peças automotivas.",
			Progress:               60,
			DriverID:               "demo-driver-02",
			DriverName:             "Roberto Santos",
		},
		{
			Code:   "RODO-90003",
			Status: domain.StatusPending,
			CurrentLocation: domain.CurrentLocation{
				City: "Belo Horizonte", State: "MG", Address: "Garagem Central",
				Coordinates: domain.Coordinates{Lat: -19.9167, Lng: -43.9345},
			},
			Origin:                 "Belo Horizonte",
			Destination:            "Brasília",
			DestinationAddress:     "Setor de Cargas, Brasília",
			DestinationCoordinates: domain.Coordinates{Lat: -15.7801, Lng: -47.9292},
			LastUpdate:             "08:00 - " + today,
			LastUpdatedBy:          "Admin",
			EstimatedDelivery:      "A Definir",
			Message:                "Aguardando carregamento.",
			Notes:                  "Carga pesada. Grãos.",
			Progress:               0,
			DriverID:               "demo-driver-03",
			DriverName:             "Fernanda Lima",
		},
	}
}

func (s *Seeder) populateShipments(ctx context.Context) error {
	for _, ship := range s.demoShipments() {
		existing, err := s.store.GetShipment(ctx, ship.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		s.logger.Info("creating demo shipment", logx.String("code", ship.Code))
		if err := s.store.SaveShipment(ctx, ship); err != nil {
			return err
		}
	}
	return nil
}
