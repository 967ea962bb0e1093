// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// OrderPlacedEvent is published when an order is successfully placed. It
// carries enough for downstream consumers to log, notify kitchen printers,
// or feed analytics without querying the primary database.
type OrderPlacedEvent struct {
	OrderID   uint64  `json:"order_id"`
	TableID   *uint64 `json:"table_id"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
	PlacedAt  string  `json:"placed_at"`
}
