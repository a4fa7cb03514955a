package domain

// TrackingStatus represents the delivery state of a shipment.
type TrackingStatus string

// List of possible tracking statuses
const (
	StatusPending   TrackingStatus = "PENDING"
	StatusInTransit TrackingStatus = "IN_TRANSIT"
	StatusStopped   TrackingStatus = "STOPPED"
	StatusDelivered TrackingStatus = "DELIVERED"
)

var allowedStatuses = [...]TrackingStatus{
	StatusPending, StatusInTransit, StatusStopped, StatusDelivered,
}

// Valid checks if the TrackingStatus is valid
func (s TrackingStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CurrentLocation describes where a shipment was last seen.
type CurrentLocation struct {
	City        string      `json:"city"`
	State       string      `json:"state"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
}

// Shipment is a tracked cargo record. Code is the unique key
// ("RODO-" followed by five digits). DriverID is a soft reference:
// the referenced driver may not exist.
type Shipment struct {
	Code                   string          `json:"code"`
	Status                 TrackingStatus  `json:"status"`
	CurrentLocation        CurrentLocation `json:"currentLocation"`
	Origin                 string          `json:"origin"`
	Destination            string          `json:"destination"`
	DestinationAddress     string          `json:"destinationAddress"`
	DestinationCoordinates Coordinates     `json:"destinationCoordinates"`
	LastUpdate             string          `json:"lastUpdate"`
	LastUpdatedBy          string          `json:"lastUpdatedBy"`
	EstimatedDelivery      string          `json:"estimatedDelivery"`
	Message                string          `json:"message"`
	Notes                  string          `json:"notes,omitempty"`
	Progress               int             `json:"progress"`
	DriverID               string          `json:"driverId,omitempty"`
	DriverName             string          `json:"driverName,omitempty"`
	IsLive                 bool            `json:"isLive,omitempty"`
}

// ClampProgress forces a progress percentage into [0, 100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
