package reservation

import "time"

const StatusConfirmed = "confirmed"

// Reservation is written once per Stripe checkout session and never changed afterwards.
type Reservation struct {
	UserID          string    `json:"user_id"`
	VehicleID       string    `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name"`
	Price           float64   `json:"price"`
	AmountTotal     int64     `json:"amount_total"`
	Currency        string    `json:"currency,omitempty"`
	StripeSessionID string    `json:"stripe_session_id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// Confirmation is the projection the success page polls for.
type Confirmation struct {
	VehicleName string `json:"vehicle_name"`
	Status      string `json:"status"`
}

func (r Reservation) Confirmation() Confirmation {
	return Confirmation{
		VehicleName: r.VehicleName,
		Status:      r.Status,
	}
}

// PriceFromAmountTotal converts the minor units Stripe reports into the stored display price.
func PriceFromAmountTotal(amountTotal int64) float64 {
	if amountTotal == 0 {
		return 0
	}
	return float64(amountTotal) / 100
}
