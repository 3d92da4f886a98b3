package model

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBrandCreated EventType = "brand.created"
	EventModelCreated EventType = "model.created"
	EventCarCreated   EventType = "car.created"
	EventCarUpdated   EventType = "car.updated"
	EventCarDeleted   EventType = "car.deleted"
)

type CatalogEvent struct {
	ID         uuid.UUID
	Type       EventType
	EntityID   int64
	Name       string
	OccurredAt time.Time
}
