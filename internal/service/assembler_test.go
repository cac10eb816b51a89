package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/availability"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/catalog"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-10-19 is a Monday.
var mondayMorning = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

func dateAt(offset int) *time.Time {
	d := time.Date(2026, 10, 19+offset, 0, 0, 0, 0, time.UTC)
	return &d
}

func sampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]models.Vendor{
		{Name: "Marina Launch Fee", Service: "Dock Fee / Launch", Price: 100, AvailableDays: []int{0, 1, 2, 3, 4}},
		{Name: "Crane Co", Service: "Boat Lift", Price: 250, AvailableDays: []int{0, 2, 4}},
		{Name: "Weekend Diver", Service: "Hull Inspection", Price: 75, AvailableDays: []int{5, 6}},
	})
	require.NoError(t, err)
	return c
}

func sampleAssembler(t *testing.T) Assembler {
	return Assembler{
		Catalog:    sampleCatalog(t),
		WindowDays: 7,
		NewID:      func() string { return "abc12345" },
	}
}

func validRequest() TicketRequest {
	return TicketRequest{
		BoatName:    "Sea Breeze",
		BoatLength:  "32ft",
		StorageType: models.StorageCradle,
		StorageID:   "C-14",
		Vendors:     []string{"Marina Launch Fee", "Crane Co"},
		ServiceDate: dateAt(4), // Friday
	}
}

func TestBuild_Success(t *testing.T) {
	ticket, err := sampleAssembler(t).Build(validRequest(), mondayMorning)

	require.NoError(t, err)
	assert.Equal(t, "abc12345", ticket.ID)
	assert.Equal(t, "Sea Breeze", ticket.BoatName)
	assert.Equal(t, "32ft", ticket.BoatLength)
	assert.Equal(t, models.StorageCradle, ticket.StorageType)
	assert.Equal(t, "C-14", ticket.StorageID)
	assert.Equal(t, *dateAt(4), ticket.ServiceDate)
	assert.Equal(t, []string{"Crane Co", "Marina Launch Fee"}, ticket.Vendors)
	assert.Equal(t, 350.0, ticket.TotalCost)
	assert.Equal(t, models.StatusScheduled, ticket.Status)
	assert.Equal(t, mondayMorning, ticket.CreatedAt)
}

func TestBuild_UnavailableDateRejected(t *testing.T) {
	req := validRequest()
	req.ServiceDate = dateAt(1) // Tuesday

	ticket, err := sampleAssembler(t).Build(req, mondayMorning)

	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Crane Co")
	assert.NotContains(t, err.Error(), "Marina Launch Fee")
}

func TestBuild_DateOutsideWindowRejected(t *testing.T) {
	req := validRequest()
	req.ServiceDate = dateAt(7) // next Monday, one past a 7-day window

	_, err := sampleAssembler(t).Build(req, mondayMorning)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "outside the booking window")

	req.ServiceDate = dateAt(-7)
	_, err = sampleAssembler(t).Build(req, mondayMorning)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuild_ChosenDateMustBeInComputedSet(t *testing.T) {
	asm := sampleAssembler(t)
	selected := []string{"Marina Launch Fee", "Crane Co"}
	dates := availability.ComputeAvailableDates(asm.Catalog.Patterns(), selected, mondayMorning, asm.WindowDays)

	for i := 0; i < asm.WindowDays; i++ {
		req := validRequest()
		req.ServiceDate = dateAt(i)
		_, err := asm.Build(req, mondayMorning)

		if availability.ContainsDate(dates, *req.ServiceDate) {
			assert.NoError(t, err, "day %d", i)
		} else {
			assert.ErrorIs(t, err, ErrValidation, "day %d", i)
		}
	}
}

func TestBuild_NoAvailability(t *testing.T) {
	req := validRequest()
	req.Vendors = []string{"Crane Co", "Weekend Diver"}

	_, err := sampleAssembler(t).Build(req, mondayMorning)

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestBuild_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *TicketRequest)
		field  string
	}{
		{"boat name", func(r *TicketRequest) { r.BoatName = "   " }, "boat_name"},
		{"storage type", func(r *TicketRequest) { r.StorageType = "" }, "storage_type"},
		{"bad storage type", func(r *TicketRequest) { r.StorageType = "Barge" }, "storage_type"},
		{"no vendors", func(r *TicketRequest) { r.Vendors = nil }, "vendors"},
		{"blank vendors", func(r *TicketRequest) { r.Vendors = []string{"", " "} }, "vendors"},
		{"no date", func(r *TicketRequest) { r.ServiceDate = nil }, "service_date"},
		{"zero date", func(r *TicketRequest) { r.ServiceDate = &time.Time{} }, "service_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			ticket, err := sampleAssembler(t).Build(req, mondayMorning)

			assert.Nil(t, ticket)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestBuild_BoatLengthRequiredWhenConfigured(t *testing.T) {
	req := validRequest()
	req.BoatLength = ""

	_, err := sampleAssembler(t).Build(req, mondayMorning)
	assert.NoError(t, err)

	asm := sampleAssembler(t)
	asm.RequireBoatLength = true
	_, err = asm.Build(req, mondayMorning)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "boat_length", ve.Field)
}

func TestBuild_UnknownVendor(t *testing.T) {
	req := validRequest()
	req.Vendors = []string{"Crane Co", "Ghost Rigging"}

	_, err := sampleAssembler(t).Build(req, mondayMorning)

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrVendorNotFound)
	assert.Contains(t, err.Error(), "Ghost Rigging")
}

func TestBuild_CostComesFromCatalog(t *testing.T) {
	req := validRequest()
	// Display labels with embedded prices must not influence cost.
	req.Vendors = []string{"Crane Co", "Crane Co", " Marina Launch Fee"}

	ticket, err := sampleAssembler(t).Build(req, mondayMorning)

	require.NoError(t, err)
	assert.Equal(t, []string{"Crane Co", "Marina Launch Fee"}, ticket.Vendors)
	assert.Equal(t, 350.0, ticket.TotalCost)
}

func TestBuild_DefaultIDGenerator(t *testing.T) {
	asm := sampleAssembler(t)
	asm.NewID = nil

	ticket, err := asm.Build(validRequest(), mondayMorning)

	require.NoError(t, err)
	assert.Len(t, ticket.ID, 8)
}

func TestNewTicketID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewTicketID()
		assert.Regexp(t, "^[0-9a-f]{8}$", id)
		seen[id] = struct{}{}
	}
	assert.Greater(t, len(seen), 95)
}
