// Package memory provides slice-backed implementations of the repository
// interfaces. It is the default store when no Postgres DSN is configured
// and the fixture store for service tests. A single lock guards all
// collections, so every mutation is visible to the next read.
package memory

import (
	"sync"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

// Store holds the authoritative in-memory collections.
type Store struct {
	mu            sync.RWMutex
	users         []domain.User
	events        []domain.Event
	categories    []domain.Category
	bookings      []domain.Booking
	notifications []domain.Notification
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}
