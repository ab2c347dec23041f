package chat

import (
	"context"
	"errors"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"sync"
	"time"
)

// memStore is an in-memory Store with the same atomic create semantics as
// the postgres storage.
type memStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	nextID   int64

	// beforeCreate runs inside CreateBooking before the overlap check.
	beforeCreate func(s *memStore)

	listErr     error
	createErr   error
	upcomingErr error
}

func newMemStore(bookings ...models.Booking) *memStore {
	return &memStore{bookings: bookings, nextID: int64(len(bookings)) + 1}
}

func (s *memStore) BookingsByHallDate(_ context.Context, hall string, date time.Time) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

	var out []models.Booking
	for _, b := range s.bookings {
		if b.Hall == hall && b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memStore) CreateBooking(_ context.Context, booking models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return nil, s.createErr
	}

	if s.beforeCreate != nil {
		hook := s.beforeCreate
		s.beforeCreate = nil
		hook(s)
	}

	for _, b := range s.bookings {
		if b.Hall != booking.Hall || !b.Date.Equal(booking.Date) {
			continue
		}
		for _, taken := range b.Slots {
			for _, want := range booking.Slots {
				if taken == want {
					return nil, errors.Join(errors.New("insert booking"), storage.ErrSlotsTaken)
				}
			}
		}
	}

	booking.ID = s.nextID
	s.nextID++
	s.bookings = append(s.bookings, booking)

	return &booking, nil
}

func (s *memStore) UpcomingBookings(_ context.Context, userID int64, from time.Time, limit int) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.upcomingErr != nil {
		return nil, s.upcomingErr
	}

	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID && !b.Date.Before(from) {
			out = append(out, b)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.bookings)
}

// monday is a fixed "now" used across the chat tests: Monday 19 October 2026, 10:15.
var monday = time.Date(2026, time.October, 19, 10, 15, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
