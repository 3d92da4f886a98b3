package consumer

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Leonardostavares/Catalogo-Carro/platform/kafka"
)

type groupHandler struct {
	handler kafka.MessageHandler
	logger  Logger
}

func newGroupHandler(handler kafka.MessageHandler, logger Logger, middlewares ...kafka.Middleware) *groupHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return &groupHandler{
		handler: handler,
		logger:  logger,
	}
}

func (g *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (g *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (g *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()

	for {
		select {
		case record, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			msg := kafka.Message{
				Key:       record.Key,
				Value:     record.Value,
				Topic:     record.Topic,
				Partition: record.Partition,
				Offset:    record.Offset,
				Timestamp: record.Timestamp,
				Headers:   headersToMap(record.Headers),
			}

			if err := g.handler(ctx, msg); err != nil {
				g.logger.Error(ctx, "kafka handler error",
					zap.String("topic", record.Topic),
					zap.Int64("offset", record.Offset),
					zap.Error(err),
				)
				continue
			}

			session.MarkMessage(record, "")

		case <-ctx.Done():
			return nil
		}
	}
}

func headersToMap(headers []*sarama.RecordHeader) map[string][]byte {
	out := make(map[string][]byte, len(headers))
	for _, h := range headers {
		if h != nil && h.Key != nil {
			out[string(h.Key)] = h.Value
		}
	}

	return out
}
