package dto

import (
	"time"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/availability"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
)

const DateLayout = "2006-01-02"

type VendorResponse struct {
	Name              string   `json:"name"`
	Service           string   `json:"service"`
	Price             float64  `json:"price"`
	AvailableDays     []int    `json:"available_days"`
	AvailableWeekdays []string `json:"available_weekdays"`
}

type AvailabilityResponse struct {
	Vendors []string `json:"vendors"`
	Start   string   `json:"start"`
	Days    int      `json:"days"`
	Dates   []string `json:"dates"`
	Message string   `json:"message,omitempty"`
}

type CalendarDayResponse struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Available bool   `json:"available"`
}

type TicketResponse struct {
	ID          string              `json:"id"`
	BoatName    string              `json:"boat_name"`
	BoatLength  string              `json:"boat_length,omitempty"`
	StorageType models.StorageType  `json:"storage_type"`
	StorageID   string              `json:"storage_id,omitempty"`
	ServiceDate string              `json:"service_date"`
	Vendors     []string            `json:"vendors"`
	TotalCost   float64             `json:"total_cost"`
	Status      models.TicketStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func ToVendorResponse(v models.Vendor) VendorResponse {
	weekdays := make([]string, 0, len(v.AvailableDays))
	for _, d := range v.AvailableDays {
		weekdays = append(weekdays, availability.WeekdayName(d))
	}
	return VendorResponse{
		Name:              v.Name,
		Service:           v.Service,
		Price:             v.Price,
		AvailableDays:     v.AvailableDays,
		AvailableWeekdays: weekdays,
	}
}

func ToDateStrings(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(DateLayout)
	}
	return out
}

func ToCalendarResponse(days []availability.Day) []CalendarDayResponse {
	out := make([]CalendarDayResponse, len(days))
	for i, d := range days {
		out[i] = CalendarDayResponse{
			Date:      d.Date.Format(DateLayout),
			Weekday:   availability.WeekdayName(availability.Weekday(d.Date)),
			Available: d.Available,
		}
	}
	return out
}

func ToTicketResponse(t *models.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		BoatName:    t.BoatName,
		BoatLength:  t.BoatLength,
		StorageType: t.StorageType,
		StorageID:   t.StorageID,
		ServiceDate: t.ServiceDate.Format(DateLayout),
		Vendors:     t.Vendors,
		TotalCost:   t.TotalCost,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}
