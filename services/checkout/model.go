package checkout

// ReservationRequest is what the browser posts to start paying for a vehicle reservation.
type ReservationRequest struct {
	VehicleID   string `json:"vehicleId" form:"vehicleId"`
	VehicleName string `json:"vehicleName" form:"vehicleName"`
	Price       string `json:"price" form:"price"`
}

type SessionResponse struct {
	URL string `json:"url"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type ConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}

const (
	metadataUserID      = "user_id"
	metadataVehicleID   = "vehicle_id"
	metadataVehicleName = "vehicle_name"
)
