package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event published for async processing,
// such as alerting the assigned cobbler's devices.
type OrderEvent struct {
	RequestID      string  `json:"request_id,omitempty"` // For distributed tracing
	EventType      string  `json:"event_type"`
	OrderID        string  `json:"order_id"`
	OrderReference string  `json:"order_reference"`
	ClientID       string  `json:"client_id,omitempty"`
	CobblerID      string  `json:"cobbler_id,omitempty"`
	Status         string  `json:"status"`
	Total          float64 `json:"total"`
	Currency       string  `json:"currency"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
