package dto

type CreateTicketRequest struct {
	BoatName    string   `json:"boat_name"`
	BoatLength  string   `json:"boat_length"`
	StorageType string   `json:"storage_type"`
	StorageID   string   `json:"storage_id"`
	Vendors     []string `json:"vendors"`
	ServiceDate string   `json:"service_date"` // YYYY-MM-DD, picked from the calendar
}
