package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/availability"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/catalog"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
)

// TicketRequest carries the submitted form values. ServiceDate is nil when
// the caller has not picked a date.
type TicketRequest struct {
	BoatName    string
	BoatLength  string
	StorageType models.StorageType
	StorageID   string
	Vendors     []string
	ServiceDate *time.Time
}

// Assembler turns a validated request into a Ticket. It has no side effects;
// storing the ticket is up to the caller.
type Assembler struct {
	Catalog           *catalog.Catalog
	WindowDays        int
	RequireBoatLength bool
	NewID             func() string
}

// Build validates req against the catalog and the availability window that
// starts on now's calendar date, then returns the ticket.
func (a Assembler) Build(req TicketRequest, now time.Time) (*models.Ticket, error) {
	boatName := strings.TrimSpace(req.BoatName)
	if boatName == "" {
		return nil, invalid("boat_name", "boat name is required")
	}
	boatLength := strings.TrimSpace(req.BoatLength)
	if a.RequireBoatLength && boatLength == "" {
		return nil, invalid("boat_length", "boat length is required")
	}
	if req.StorageType == "" {
		return nil, invalid("storage_type", "storage type is required")
	}
	if !req.StorageType.Valid() {
		return nil, invalid("storage_type", fmt.Sprintf("unknown storage type %q", req.StorageType))
	}

	vendors := normalizeNames(req.Vendors)
	if len(vendors) == 0 {
		return nil, invalid("vendors", "select at least one service")
	}
	if missing := a.Catalog.Missing(vendors); len(missing) > 0 {
		return nil, &ValidationError{
			Field:   "vendors",
			Message: "unknown vendors: " + strings.Join(missing, ", "),
			Err:     ErrVendorNotFound,
		}
	}

	if req.ServiceDate == nil || req.ServiceDate.IsZero() {
		return nil, invalid("service_date", "service date is required")
	}
	serviceDate := availability.DateOf(*req.ServiceDate)

	dates := availability.ComputeAvailableDates(a.Catalog.Patterns(), vendors, now, a.WindowDays)
	if len(dates) == 0 {
		return nil, &ValidationError{
			Field:   "service_date",
			Message: ErrNoAvailability.Error(),
			Err:     ErrNoAvailability,
		}
	}
	if !availability.ContainsDate(dates, serviceDate) {
		return nil, invalid("service_date", a.rejectReason(vendors, serviceDate, now))
	}

	newID := a.NewID
	if newID == nil {
		newID = NewTicketID
	}
	return &models.Ticket{
		ID:          newID(),
		BoatName:    boatName,
		BoatLength:  boatLength,
		StorageType: req.StorageType,
		StorageID:   strings.TrimSpace(req.StorageID),
		ServiceDate: serviceDate,
		Vendors:     vendors,
		TotalCost:   a.Catalog.TotalPrice(vendors),
		Status:      models.StatusScheduled,
		CreatedAt:   now,
	}, nil
}

// rejectReason explains why date is not selectable: outside the window, or
// which vendors are off that day.
func (a Assembler) rejectReason(vendors []string, date, now time.Time) string {
	first := availability.DateOf(now)
	last := first.AddDate(0, 0, a.WindowDays-1)
	if date.Before(first) || date.After(last) {
		return fmt.Sprintf("%s is outside the booking window %s to %s",
			date.Format(DateLayout), first.Format(DateLayout), last.Format(DateLayout))
	}

	var off []string
	for _, v := range vendors {
		if p, _ := a.Catalog.Pattern(v); !availability.IsAvailable(p, date) {
			off = append(off, v)
		}
	}
	return fmt.Sprintf("the following vendors are unavailable on %s: %s",
		date.Format(DateLayout), strings.Join(off, ", "))
}

// normalizeNames trims, drops blanks and duplicates, and sorts.
func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
