package ctconsumer

import (
	"context"
	"fmt"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka"
	"github.com/Leonardostavares/Catalogo-Carro/platform/logger"
)

type Converter interface {
	PayloadToCatalogEvent(data []byte) (model.CatalogEvent, error)
}

// Recorder receives every decoded catalog event.
type Recorder interface {
	RecordCatalogEvent(ctx context.Context, event model.CatalogEvent) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	recorder Recorder
}

func NewCatalogConsumer(consumer kafka.Consumer, conv Converter, recorder Recorder) *service {
	return &service{consumer: consumer, conv: conv, recorder: recorder}
}

func (s *service) RunCatalogEventsConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting catalog events consumer")

	if err := s.consumer.Consume(ctx, s.catalogEventHandler); err != nil {
		logger.Error(ctx, "Consume from catalog events topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) catalogEventHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.PayloadToCatalogEvent(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode catalog event", logger.ErrorF(err))
		return fmt.Errorf("converter payload_to_catalog_event error: %w", err)
	}

	if err := s.recorder.RecordCatalogEvent(ctx, event); err != nil {
		logger.Error(ctx, "consumer.RecordCatalogEvent", logger.ErrorF(err))
		return err
	}

	return nil
}

// LogRecorder writes each event to the service log.
type LogRecorder struct{}

func (LogRecorder) RecordCatalogEvent(ctx context.Context, event model.CatalogEvent) error {
	logger.Info(ctx, "catalog event",
		logger.String("event_id", event.ID.String()),
		logger.String("event_type", string(event.Type)),
		logger.Int64("entity_id", event.EntityID),
		logger.String("name", event.Name),
		logger.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
