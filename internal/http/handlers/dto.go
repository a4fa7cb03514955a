package handlers

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
}

type userDTO struct {
	Username string `json:"username"`
}

type saveUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type saveDriverRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type createShipmentRequest struct {
	Origin             string `json:"origin"`
	Destination        string `json:"destination"`
	DestinationAddress string `json:"destinationAddress,omitempty"`
	CurrentCity        string `json:"currentCity,omitempty"`
	CurrentState       string `json:"currentState,omitempty"`
	CurrentAddress     string `json:"currentAddress,omitempty"`
	Status             string `json:"status,omitempty"`
	EstimatedDelivery  string `json:"estimatedDelivery,omitempty"`
	Message            string `json:"message,omitempty"`
	Notes              string `json:"notes,omitempty"`
	DriverID           string `json:"driverId,omitempty"`
	DriverName         string `json:"driverName,omitempty"`
	CreatedBy          string `json:"createdBy,omitempty"`
}

type updateLocationRequest struct {
	City      string  `json:"city"`
	State     string  `json:"state,omitempty"`
	Address   string  `json:"address,omitempty"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
	Message   string  `json:"message,omitempty"`
	UpdatedBy string  `json:"updatedBy,omitempty"`
}

type updateStatusRequest struct {
	Status    string `json:"status"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}
