package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/availability"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/catalog"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/clock"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/metrics"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/session"
)

const DateLayout = "2006-01-02"

// RoutingKeyTicketScheduled is published for every created ticket.
const RoutingKeyTicketScheduled = "ticket.scheduled"

// TicketPublisher announces created tickets. pkg/rabbitmq.Publisher
// satisfies it.
type TicketPublisher interface {
	Publish(routingKey string, payload any) error
}

// AvailabilityQuery selects vendors and a window. A nil Start means today;
// zero Days means the configured default window.
type AvailabilityQuery struct {
	Vendors []string
	Start   *time.Time
	Days    int
}

type AvailabilityResult struct {
	Vendors []string
	Start   time.Time
	Days    int
	Dates   []time.Time
}

// Empty reports the "no slot available" outcome. It is a valid result, not
// an error.
func (r *AvailabilityResult) Empty() bool {
	return len(r.Dates) == 0
}

type SchedulingService interface {
	ListVendors(ctx context.Context) []models.Vendor
	Availability(ctx context.Context, q AvailabilityQuery) (*AvailabilityResult, error)
	Calendar(ctx context.Context, q AvailabilityQuery) ([]availability.Day, error)
	CreateTicket(ctx context.Context, sessionID string, req TicketRequest) (*models.Ticket, error)
	ListTickets(ctx context.Context, sessionID string) []models.Ticket
}

type Options struct {
	WindowDays        int
	MaxWindowDays     int
	RequireBoatLength bool
}

type schedulingService struct {
	catalog   *catalog.Catalog
	sessions  *session.Manager
	clock     clock.Clock
	publisher TicketPublisher
	metrics   *metrics.SchedulingMetrics
	opts      Options
	newID     func() string
}

// NewSchedulingService wires the scheduler. publisher and m may be nil.
func NewSchedulingService(
	cat *catalog.Catalog,
	sessions *session.Manager,
	clk clock.Clock,
	publisher TicketPublisher,
	m *metrics.SchedulingMetrics,
	opts Options,
) SchedulingService {
	if opts.WindowDays <= 0 {
		opts.WindowDays = 30
	}
	if opts.MaxWindowDays < opts.WindowDays {
		opts.MaxWindowDays = opts.WindowDays
	}
	return &schedulingService{
		catalog:   cat,
		sessions:  sessions,
		clock:     clk,
		publisher: publisher,
		metrics:   m,
		opts:      opts,
		newID:     NewTicketID,
	}
}

func (s *schedulingService) ListVendors(ctx context.Context) []models.Vendor {
	return s.catalog.Vendors()
}

func (s *schedulingService) resolveQuery(q AvailabilityQuery) ([]string, time.Time, int, error) {
	vendors := normalizeNames(q.Vendors)
	if missing := s.catalog.Missing(vendors); len(missing) > 0 {
		return nil, time.Time{}, 0, fmt.Errorf("%w: %v", ErrVendorNotFound, missing)
	}

	days := q.Days
	if days == 0 {
		days = s.opts.WindowDays
	}
	if days < 1 || days > s.opts.MaxWindowDays {
		return nil, time.Time{}, 0, invalid("days", fmt.Sprintf("window must be between 1 and %d days", s.opts.MaxWindowDays))
	}

	start := s.clock.Now()
	if q.Start != nil {
		start = *q.Start
	}
	return vendors, availability.DateOf(start), days, nil
}

func (s *schedulingService) Availability(ctx context.Context, q AvailabilityQuery) (*AvailabilityResult, error) {
	vendors, start, days, err := s.resolveQuery(q)
	if err != nil {
		s.metrics.ObserveAvailability(0, err)
		return nil, err
	}

	dates := availability.ComputeAvailableDates(s.catalog.Patterns(), vendors, start, days)
	s.metrics.ObserveAvailability(len(dates), nil)

	return &AvailabilityResult{
		Vendors: vendors,
		Start:   start,
		Days:    days,
		Dates:   dates,
	}, nil
}

func (s *schedulingService) Calendar(ctx context.Context, q AvailabilityQuery) ([]availability.Day, error) {
	vendors, start, days, err := s.resolveQuery(q)
	if err != nil {
		return nil, err
	}
	return availability.Calendar(s.catalog.Patterns(), vendors, start, days), nil
}

func (s *schedulingService) CreateTicket(ctx context.Context, sessionID string, req TicketRequest) (*models.Ticket, error) {
	asm := Assembler{
		Catalog:           s.catalog,
		WindowDays:        s.opts.WindowDays,
		RequireBoatLength: s.opts.RequireBoatLength,
		NewID:             s.newID,
	}

	ticket, err := asm.Build(req, s.clock.Now())
	if err != nil {
		s.metrics.ObserveTicketRejected()
		return nil, err
	}

	s.sessions.Get(sessionID).Append(*ticket)
	s.metrics.ObserveTicketCreated(len(ticket.Vendors))

	// Publishing is best effort; the ticket already belongs to the session.
	if s.publisher != nil {
		if err := s.publisher.Publish(RoutingKeyTicketScheduled, ticket); err != nil {
			log.Printf("[Scheduling] failed to publish ticket %s: %v", ticket.ID, err)
		}
	}

	log.Printf("[Scheduling] ticket %s scheduled for %s on %s (%d vendors)",
		ticket.ID, ticket.BoatName, ticket.ServiceDate.Format(DateLayout), len(ticket.Vendors))
	return ticket, nil
}

func (s *schedulingService) ListTickets(ctx context.Context, sessionID string) []models.Ticket {
	store, ok := s.sessions.Peek(sessionID)
	if !ok {
		return []models.Ticket{}
	}
	return store.List()
}
