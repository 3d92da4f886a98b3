package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type catalogEventRecord struct {
	EventUUID  string `json:"event_uuid"`
	EventType  string `json:"event_type"`
	EntityID   int64  `json:"entity_id"`
	Name       string `json:"name,omitempty"`
	OccurredAt int64  `json:"occurred_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) CatalogEventToPayload(e model.CatalogEvent) ([]byte, error) {
	payload, err := json.Marshal(catalogEventRecord{
		EventUUID:  e.ID.String(),
		EventType:  string(e.Type),
		EntityID:   e.EntityID,
		Name:       e.Name,
		OccurredAt: e.OccurredAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog event: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToCatalogEvent(data []byte) (model.CatalogEvent, error) {
	var rec catalogEventRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.CatalogEvent{}, fmt.Errorf("failed to unmarshal catalog event: %w", err)
	}

	id, err := uuid.Parse(rec.EventUUID)
	if err != nil {
		return model.CatalogEvent{}, fmt.Errorf("invalid event uuid %q: %w", rec.EventUUID, err)
	}

	return model.CatalogEvent{
		ID:         id,
		Type:       model.EventType(rec.EventType),
		EntityID:   rec.EntityID,
		Name:       rec.Name,
		OccurredAt: time.Unix(rec.OccurredAt, 0).UTC(),
	}, nil
}
