package dto

type BookingListDTO struct {
	ID         uint    `json:"id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	ClientName string  `json:"client_name"`
	CourtName  string  `json:"court_name"`
	SlotStart  string  `json:"slot_start"`
	SlotEnd    string  `json:"slot_end"`
}
