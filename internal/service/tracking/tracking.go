package tracking

import (
	"context"
	"strings"
	"time"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/apperr"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/geo"
)

// lastUpdateLayout is the human-readable timestamp stored on the record.
const lastUpdateLayout = "15:04 - 02/01/2006"

// Service coordinates shipment business logic: code generation, geocoding
// and progress derivation around the storage gateway.
type Service struct {
	store shipmentStore
	geo   geoResolver
	codes codeGenerator
	now   func() time.Time
}

// NewService creates a tracking Service.
func NewService(store shipmentStore, resolver geoResolver, codes codeGenerator) *Service {
	return &Service{store: store, geo: resolver, codes: codes, now: time.Now}
}

// CreateInput carries the fields needed to register a new shipment.
type CreateInput struct {
	Origin             string
	Destination        string
	DestinationAddress string
	CurrentCity        string
	CurrentState       string
	CurrentAddress     string
	Status             domain.TrackingStatus
	EstimatedDelivery  string
	Message            string
	Notes              string
	DriverID           string
	DriverName         string
	CreatedBy          string
}

// LocationUpdate carries a new observed position for a shipment.
type LocationUpdate struct {
	City        string
	State       string
	Address     string
	Coordinates domain.Coordinates // zero value means "resolve from the text fields"
	Message     string
	UpdatedBy   string
	Live        bool
}

func validateCreate(in *CreateInput) error {
	if strings.TrimSpace(in.Origin) == "" || strings.TrimSpace(in.Destination) == "" {
		return apperr.Invalid
	}
	if in.Status == "" {
		in.Status = domain.StatusPending
	}
	if !in.Status.Valid() {
		return apperr.Invalid
	}
	return nil
}

// List returns the full shipment map keyed by code.
func (s *Service) List(ctx context.Context) (map[string]domain.Shipment, error) {
	return s.store.ListShipments(ctx)
}

// Get retrieves a shipment by code.
func (s *Service) Get(ctx context.Context, code string) (*domain.Shipment, error) {
	if strings.TrimSpace(code) == "" {
		return nil, apperr.Invalid
	}
	ship, err := s.store.GetShipment(ctx, code)
	if err != nil {
		return nil, err
	}
	if ship == nil {
		return nil, apperr.NotFound
	}
	return ship, nil
}

// Create registers a new shipment: generates a unique code, geocodes the
// route endpoints and the starting position, and derives the initial
// progress percentage.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Shipment, error) {
	if err := validateCreate(&in); err != nil {
		return domain.Shipment{}, err
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return domain.Shipment{}, err
	}

	originCoords := s.geo.Resolve(ctx, in.Origin, "", "")
	destCoords := s.geo.Resolve(ctx, in.Destination, "", in.DestinationAddress)

	current := domain.CurrentLocation{
		City:    in.CurrentCity,
		State:   in.CurrentState,
		Address: in.CurrentAddress,
	}
	if strings.TrimSpace(in.CurrentCity) != "" {
		current.Coordinates = s.geo.Resolve(ctx, in.CurrentCity, in.CurrentState, in.CurrentAddress)
	} else {
		current.City = in.Origin
		current.Coordinates = originCoords
	}

	ship := domain.Shipment{
		Code:                   code,
		Status:                 in.Status,
		CurrentLocation:        current,
		Origin:                 in.Origin,
		Destination:            in.Destination,
		DestinationAddress:     in.DestinationAddress,
		DestinationCoordinates: destCoords,
		LastUpdate:             s.now().Format(lastUpdateLayout),
		LastUpdatedBy:          in.CreatedBy,
		EstimatedDelivery:      in.EstimatedDelivery,
		Message:                in.Message,
		Notes:                  in.Notes,
		Progress:               geo.Progress(originCoords, destCoords, current.Coordinates),
		DriverID:               in.DriverID,
		DriverName:             in.DriverName,
	}

	if err := s.store.SaveShipment(ctx, ship); err != nil {
		return domain.Shipment{}, err
	}
	return ship, nil
}

// UpdateLocation applies a new observed position to a shipment and
// recomputes its progress from the route endpoints.
func (s *Service) UpdateLocation(ctx context.Context, code string, upd LocationUpdate) (*domain.Shipment, error) {
	ship, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	coords := upd.Coordinates
	if coords.IsZero() && strings.TrimSpace(upd.City) != "" {
		coords = s.geo.Resolve(ctx, upd.City, upd.State, upd.Address)
	}

	if ship.DestinationCoordinates.IsZero() {
		ship.DestinationCoordinates = s.geo.Resolve(ctx, ship.Destination, "", ship.DestinationAddress)
	}
	originCoords := s.geo.Resolve(ctx, ship.Origin, "", "")

	ship.CurrentLocation = domain.CurrentLocation{
		City:        upd.City,
		State:       upd.State,
		Address:     upd.Address,
		Coordinates: coords,
	}
	ship.Progress = geo.Progress(originCoords, ship.DestinationCoordinates, coords)
	ship.LastUpdate = s.now().Format(lastUpdateLayout)
	ship.LastUpdatedBy = upd.UpdatedBy
	if upd.Message != "" {
		ship.Message = upd.Message
	}
	ship.IsLive = upd.Live

	if err := s.store.SaveShipment(ctx, *ship); err != nil {
		return nil, err
	}
	return ship, nil
}

// UpdateStatus transitions a shipment to a new tracking status.
// A delivered shipment always reports full progress.
func (s *Service) UpdateStatus(ctx context.Context, code string, status domain.TrackingStatus, updatedBy string) (*domain.Shipment, error) {
	if !status.Valid() {
		return nil, apperr.Invalid
	}
	ship, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	ship.Status = status
	if status == domain.StatusDelivered {
		ship.Progress = 100
		ship.IsLive = false
	}
	ship.LastUpdate = s.now().Format(lastUpdateLayout)
	ship.LastUpdatedBy = updatedBy

	if err := s.store.SaveShipment(ctx, *ship); err != nil {
		return nil, err
	}
	return ship, nil
}

// Delete removes a shipment by code. Deleting an absent code is a no-op.
func (s *Service) Delete(ctx context.Context, code string) error {
	if strings.TrimSpace(code) == "" {
		return apperr.Invalid
	}
	return s.store.DeleteShipment(ctx, code)
}

// TrackByPhone finds the active shipment assigned to the driver whose
// stored phone matches the queried one.
func (s *Service) TrackByPhone(ctx context.Context, phone string) (*domain.Shipment, error) {
	if domain.NormalizePhone(phone) == "" {
		return nil, apperr.Invalid
	}
	ship, err := s.store.FindShipmentByDriverPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if ship == nil {
		return nil, apperr.NotFound
	}
	return ship, nil
}
