package kafka

import (
	"strings"

	"github.com/Rodovar-GPS/Rodovar-GPS/internal/service/locations"
)

// EventDTO is the wire format of a live location message.
type EventDTO struct {
	Code      string  `json:"code"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Address   string  `json:"address,omitempty"`
	Message   string  `json:"message,omitempty"`
	UpdatedBy string  `json:"updated_by,omitempty"`
}

// ToDomain converts EventDTO to locations.Event.
func ToDomain(dto EventDTO) locations.Event {
	return locations.Event{
		Code:      strings.TrimSpace(dto.Code),
		Lat:       dto.Lat,
		Lng:       dto.Lng,
		City:      strings.TrimSpace(dto.City),
		State:     strings.TrimSpace(dto.State),
		Address:   strings.TrimSpace(dto.Address),
		Message:   strings.TrimSpace(dto.Message),
		UpdatedBy: strings.TrimSpace(dto.UpdatedBy),
	}
}
