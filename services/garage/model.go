package garage

import "time"

// Garage is the persisted list of vehicles a user keeps an eye on.
type Garage struct {
	UserUID         string
	SavedVehicleIDs []string
	LastModified    *time.Time
}

func (g Garage) Saved() *SavedVehicles {
	return NewSavedVehicles(g.SavedVehicleIDs...)
}

type GarageResponse struct {
	Vehicles []string `json:"vehicles"`
}

type ToggleResponse struct {
	VehicleID string   `json:"vehicleId"`
	Saved     bool     `json:"saved"`
	Vehicles  []string `json:"vehicles"`
}
