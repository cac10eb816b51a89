package models

import "time"

type TicketStatus string

const (
	StatusScheduled TicketStatus = "Scheduled"
)

type StorageType string

const (
	StorageCradle  StorageType = "Cradle"
	StorageTrailer StorageType = "Trailer"
)

// StorageTypes lists the accepted storage tags in display order.
var StorageTypes = []StorageType{StorageCradle, StorageTrailer}

func (s StorageType) Valid() bool {
	for _, st := range StorageTypes {
		if s == st {
			return true
		}
	}
	return false
}

// Ticket is a confirmed service request. It is built once and never mutated.
type Ticket struct {
	ID          string       `json:"id"`
	BoatName    string       `json:"boat_name"`
	BoatLength  string       `json:"boat_length,omitempty"`
	StorageType StorageType  `json:"storage_type"`
	StorageID   string       `json:"storage_id,omitempty"`
	ServiceDate time.Time    `json:"service_date"`
	Vendors     []string     `json:"vendors"`
	TotalCost   float64      `json:"total_cost"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
