package dto

import "time"

type PaymentListDTO struct {
	ID         uint      `json:"id"`
	BookingID  uint      `json:"booking_id"`
	PaidAt     time.Time `json:"paid_at"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method"`
	Reference  string    `json:"reference"`
	ClientName string    `json:"client_name"`
	CourtName  string    `json:"court_name"`
}
