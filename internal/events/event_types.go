package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated EventType = "product_created"
	EventProductUpdated EventType = "product_updated"
	EventProductDeleted EventType = "product_deleted"
)

// Event represents a catalog event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	ProductID string      `json:"product_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// ProductCreatedPayload payload.
type ProductCreatedPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

// ProductUpdatedPayload payload.
type ProductUpdatedPayload struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ImageChanged bool    `json:"image_changed"`
}
