package models

import "time"

// Event types published to the order events topic
const (
	EventTypeOrderPlaced        = "ORDER_PLACED"
	EventTypeOrderStatusChanged = "ORDER_STATUS_CHANGED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent published when a checkout succeeds
type OrderPlacedEvent struct {
	BaseEvent
	OrderID     int64   `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	CustomerID  int64   `json:"customer_id,omitempty"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"item_count"`
}

// OrderStatusChangedEvent published on every status transition
type OrderStatusChangedEvent struct {
	BaseEvent
	OrderID     int64  `json:"order_id"`
	OrderNumber string `json:"order_number"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
}
