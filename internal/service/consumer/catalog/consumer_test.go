package ctconsumer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leonardostavares/Catalogo-Carro/internal/converter"
	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka"
)

type fakeConsumer struct {
	messages []kafka.Message
}

func (f *fakeConsumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	for _, msg := range f.messages {
		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

type recorder struct {
	events []model.CatalogEvent
}

func (r *recorder) RecordCatalogEvent(_ context.Context, event model.CatalogEvent) error {
	r.events = append(r.events, event)
	return nil
}

func TestRunCatalogEventsConsume(t *testing.T) {
	t.Parallel()

	conv := converter.NewKafkaConverter()
	event := model.CatalogEvent{
		ID:         uuid.New(),
		Type:       model.EventCarCreated,
		EntityID:   1000,
		Name:       "Onix Plus",
		OccurredAt: time.Unix(1696539488, 0).UTC(),
	}
	payload, err := conv.CatalogEventToPayload(event)
	require.NoError(t, err)

	rec := &recorder{}
	svc := NewCatalogConsumer(&fakeConsumer{messages: []kafka.Message{{Value: payload}}}, conv, rec)

	require.NoError(t, svc.RunCatalogEventsConsume(context.Background()))
	require.Len(t, rec.events, 1)
	assert.Equal(t, event, rec.events[0])
}

func TestRunCatalogEventsConsumeBadPayload(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	svc := NewCatalogConsumer(
		&fakeConsumer{messages: []kafka.Message{{Value: []byte("not json")}}},
		converter.NewKafkaConverter(),
		rec,
	)

	assert.Error(t, svc.RunCatalogEventsConsume(context.Background()))
	assert.Empty(t, rec.events)
}
