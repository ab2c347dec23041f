package models

import "time"

// Booking is a reservation of some slots of one hall on one day.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Hall      string    `json:"hall"`
	Date      time.Time `json:"booking_date"`
	Slots     []string  `json:"slots"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"created_at"`
}
