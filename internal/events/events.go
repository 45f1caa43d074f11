// Package events publishes stock-movement events for downstream consumers.
// Publishing is best-effort: a failed publish is logged, never surfaced to
// the storefront caller.
package events

import "time"

const (
	EventStockSold      = "stock.sold"
	EventStockRestocked = "stock.restocked"
)

type Event struct {
	Type      string    `json:"type"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Stock     int       `json:"stock"`
	At        time.Time `json:"at"`
}

type Publisher interface {
	Publish(e Event)
}

// NoopPublisher is the default when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(Event) {}
