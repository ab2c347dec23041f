package chat

import (
	"context"
	"errors"
	"fmt"
	"hallBooker/internal/catalog"
	"hallBooker/internal/models"
	"hallBooker/internal/storage"
	"time"
)

// BookingStore is the part of the reservation store the conflict checker needs.
// CreateBooking must be atomic: it fails with storage.ErrSlotsTaken instead
// of inserting when any requested slot is already reserved.
type BookingStore interface {
	BookingsByHallDate(ctx context.Context, hall string, date time.Time) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
}

// Conflict lists which requested slots are taken and which are still free.
type Conflict struct {
	Overlap []string
	Free    []string
}

// FullyBooked reports that none of the requested slots can be had.
func (c Conflict) FullyBooked() bool {
	return len(c.Free) == 0
}

// Outcome holds exactly one of a created booking or a conflict.
type Outcome struct {
	Booking  *models.Booking
	Conflict *Conflict
}

type ConflictChecker struct {
	catalog catalog.Catalog
	store   BookingStore
}

func NewConflictChecker(c catalog.Catalog, store BookingStore) *ConflictChecker {
	return &ConflictChecker{catalog: c, store: store}
}

// Book creates the booking when none of its slots overlap existing
// reservations of the same hall and day. On overlap nothing is created.
func (c *ConflictChecker) Book(ctx context.Context, booking models.Booking) (Outcome, error) {
	const op = "chat.ConflictChecker.Book"

	booking.Slots = c.catalog.Order(booking.Slots)

	conflict, err := c.Check(ctx, booking.Hall, booking.Date, booking.Slots)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", op, err)
	}

	if conflict != nil {
		return Outcome{Conflict: conflict}, nil
	}

	created, err := c.store.CreateBooking(ctx, booking)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotsTaken) {
			return Outcome{}, fmt.Errorf("%s: %w", op, err)
		}

		// Another request took some of the slots after our check.
		conflict, err = c.Check(ctx, booking.Hall, booking.Date, booking.Slots)
		if err != nil {
			return Outcome{}, fmt.Errorf("%s: %w", op, err)
		}
		if conflict == nil {
			conflict = &Conflict{Overlap: booking.Slots}
		}

		return Outcome{Conflict: conflict}, nil
	}

	return Outcome{Booking: created}, nil
}

// Check returns the conflict between slots and the existing reservations for
// hall on date, or nil when every slot is free.
func (c *ConflictChecker) Check(ctx context.Context, hall string, date time.Time, slots []string) (*Conflict, error) {
	existing, err := c.store.BookingsByHallDate(ctx, hall, date)
	if err != nil {
		return nil, err
	}

	overlap, free := c.catalog.Split(slots, bookedSlots(existing))
	if len(overlap) == 0 {
		return nil, nil
	}

	return &Conflict{Overlap: overlap, Free: free}, nil
}

func bookedSlots(bookings []models.Booking) []string {
	var slots []string
	for _, b := range bookings {
		slots = append(slots, b.Slots...)
	}
	return slots
}
