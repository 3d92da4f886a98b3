package ctproducer

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka"
)

const headerEventType = "event_type"

type Converter interface {
	CatalogEventToPayload(e model.CatalogEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewCatalogProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendCatalogEvent keys records by entity id so events of one entity stay ordered.
func (s *service) SendCatalogEvent(ctx context.Context, event model.CatalogEvent) error {
	payload, err := s.conv.CatalogEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter catalog_event_to_payload error: %w", err)
	}

	err = s.producer.Send(ctx, kafka.Message{
		Key:     []byte(strconv.FormatInt(event.EntityID, 10)),
		Value:   payload,
		Headers: map[string][]byte{headerEventType: []byte(event.Type)},
	})
	if err != nil {
		return fmt.Errorf("producer to catalog events topic error: %w", err)
	}

	return nil
}

type nopSender struct{}

// NewNopSender is used when Kafka is disabled.
func NewNopSender() nopSender { return nopSender{} }

func (nopSender) SendCatalogEvent(context.Context, model.CatalogEvent) error { return nil }
