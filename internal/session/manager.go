package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/clock"
)

// Manager hands out one Store per session ID. Stores live in memory only and
// are dropped once idle for longer than the TTL.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	ttl    time.Duration
	clock  clock.Clock
}

func NewManager(ttl time.Duration, clk clock.Clock) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		ttl:    ttl,
		clock:  clk,
	}
}

// Get returns the store for id, creating an empty one on first use.
func (m *Manager) Get(id string) *Store {
	now := m.clock.Now()

	m.mu.Lock()
	s, ok := m.stores[id]
	if !ok {
		s = NewStore()
		m.stores[id] = s
	}
	m.mu.Unlock()

	s.touch(now)
	return s
}

// Peek returns the store for id without creating or touching it.
func (m *Manager) Peek(id string) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[id]
	return s, ok
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed. A non-positive TTL disables eviction.
func (m *Manager) Sweep(now time.Time) int {
	if m.ttl <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.stores {
		if s.idleSince(now) > m.ttl {
			delete(m.stores, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is cancelled.
func (m *Manager) StartSweeper(ctx context.Context, interval time.Duration) {
	if m.ttl <= 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("[Session] sweeper stopped")
				return
			case <-ticker.C:
				if n := m.Sweep(m.clock.Now()); n > 0 {
					log.Printf("[Session] evicted %d idle sessions", n)
				}
			}
		}
	}()
}
