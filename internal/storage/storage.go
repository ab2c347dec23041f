package storage

import "errors"

var (
	ErrUserExists      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotsTaken      = errors.New("some slots are already booked")
)
