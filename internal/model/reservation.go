package model

import "time"

// Reservation books a table for a time window. EndAt is stored for a future
// auto-cancellation job; nothing consumes it yet.
type Reservation struct {
	ID      uint64    `json:"id"`
	TableID uint64    `json:"table_id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Status  string    `json:"status"`
}
