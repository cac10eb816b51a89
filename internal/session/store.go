package session

import (
	"sync"
	"time"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/models"
)

// Store is the ticket list owned by a single session.
type Store struct {
	mu       sync.Mutex
	tickets  []models.Ticket
	lastSeen time.Time
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(t models.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.Vendors = append([]string(nil), t.Vendors...)
	s.tickets = append(s.tickets, t)
}

// List returns the tickets in creation order. The slice is a copy.
func (s *Store) List() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, len(s.tickets))
	for i, t := range s.tickets {
		t.Vendors = append([]string(nil), t.Vendors...)
		out[i] = t
	}
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickets)
}

func (s *Store) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Store) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
