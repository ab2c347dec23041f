package models

import "time"

type Feedback struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}
