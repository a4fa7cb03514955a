package locations

// Event is a single live position report from a driver's device.
type Event struct {
	Code      string  `json:"code"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Address   string  `json:"address"`
	Message   string  `json:"message"`
	UpdatedBy string  `json:"updated_by"`
}
