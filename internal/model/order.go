package model

import "time"

// Order records a placed order. TableID and UserID are optional: walk-in
// guests order against a table code, delivery orders carry neither.
//
// Fields:
//
//	ID        – primary key identifier.
//	TableID   – table the order belongs to (nil for delivery/guest).
//	UserID    – user who placed the order (nil for anonymous orders).
//	Status    – order state ("pending", "preparing", "ready", ...).
//	Total     – total price computed from menu prices at creation time.
//	CreatedAt – creation timestamp.
type Order struct {
	ID        uint64    `json:"id"`
	TableID   *uint64   `json:"table_id"`
	UserID    *uint64   `json:"user_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItem links an order to a menu item with a quantity and optional
// preparation notes.
type OrderItem struct {
	ID         uint64  `json:"id"`
	OrderID    uint64  `json:"order_id"`
	MenuItemID uint64  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Notes      *string `json:"notes"`
}
