package events

import (
	"context"
	"encoding/json"

	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/contracts"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/logging"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/messaging"
	"github.com/rabbitmq/amqp091-go"
)

type chatConsumer struct {
	rabbitmq *messaging.RabbitMQ
	logger   logging.Logger
}

func NewChatConsumer(rabbitmq *messaging.RabbitMQ, logger logging.Logger) *chatConsumer {
	return &chatConsumer{
		rabbitmq: rabbitmq,
		logger:   logger,
	}
}

func (c *chatConsumer) Listen() error {
	return c.rabbitmq.ConsumeMessages(messaging.EventsQueue, func(ctx context.Context, msg amqp091.Delivery) error {
		var message contracts.AmqpMessage
		if err := json.Unmarshal(msg.Body, &message); err != nil {
			c.logger.Error(logging.RabbitMQ, logging.Consume, "failed to unmarshal event envelope", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
			return err
		}

		c.logger.Info(logging.RabbitMQ, logging.Consume, "chat event received", map[logging.ExtraKey]any{
			"eventId":    message.EventID,
			"routingKey": msg.RoutingKey,
		})

		return nil
	})
}
