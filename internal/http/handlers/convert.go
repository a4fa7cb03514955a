package handlers

import (
	"strings"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/domain"
	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/tracking"
)

func (r saveUserRequest) toModel() domain.AdminUser {
	return domain.AdminUser{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}
}

func (r saveDriverRequest) toModel() domain.Driver {
	return domain.Driver{
		ID:    strings.TrimSpace(r.ID),
		Name:  strings.TrimSpace(r.Name),
		Phone: strings.TrimSpace(r.Phone),
	}
}

func (r createShipmentRequest) toInput() tracking.CreateInput {
	return tracking.CreateInput{
		Origin:             strings.TrimSpace(r.Origin),
		Destination:        strings.TrimSpace(r.Destination),
		DestinationAddress: strings.TrimSpace(r.DestinationAddress),
		CurrentCity:        strings.TrimSpace(r.CurrentCity),
		CurrentState:       strings.TrimSpace(r.CurrentState),
		CurrentAddress:     strings.TrimSpace(r.CurrentAddress),
		Status:             domain.TrackingStatus(strings.TrimSpace(r.Status)),
		EstimatedDelivery:  strings.TrimSpace(r.EstimatedDelivery),
		Message:            strings.TrimSpace(r.Message),
		Notes:              r.Notes,
		DriverID:           strings.TrimSpace(r.DriverID),
		DriverName:         strings.TrimSpace(r.DriverName),
		CreatedBy:          strings.TrimSpace(r.CreatedBy),
	}
}

func (r updateLocationRequest) toUpdate() tracking.LocationUpdate {
	return tracking.LocationUpdate{
		City:        strings.TrimSpace(r.City),
		State:       strings.TrimSpace(r.State),
		Address:     strings.TrimSpace(r.Address),
		Coordinates: domain.Coordinates{Lat: r.Lat, Lng: r.Lng},
		Message:     strings.TrimSpace(r.Message),
		UpdatedBy:   strings.TrimSpace(r.UpdatedBy),
	}
}

func usersToResponse(users []domain.AdminUser) []userDTO {
	out := make([]userDTO, 0, len(users))
	for _, u := range users {
		out = append(out, userDTO{Username: u.Username})
	}
	return out
}
