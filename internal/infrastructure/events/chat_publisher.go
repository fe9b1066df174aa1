package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jefner876/codernet-backend-solo/internal/domain"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/contracts"
	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/messaging"
)

// ChatPublisher emits domain events after successful writes. Publishing is
// best-effort: callers log failures and keep serving the request.
type ChatPublisher struct {
	rabbitmq *messaging.RabbitMQ
}

func NewChatPublisher(rabbitmq *messaging.RabbitMQ) *ChatPublisher {
	return &ChatPublisher{
		rabbitmq: rabbitmq,
	}
}

func (p *ChatPublisher) PublishUserCreated(ctx context.Context, user domain.User) error {
	payload := messaging.UserEventData{
		User: user,
	}

	userEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventUserCreated, contracts.AmqpMessage{
		EventID: uuid.NewString(),
		Data:    userEventJSON,
	})
}

func (p *ChatPublisher) PublishMessageCreated(ctx context.Context, message domain.Message) error {
	payload := messaging.MessageEventData{
		Message: message,
	}

	messageEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventMessageCreated, contracts.AmqpMessage{
		EventID: uuid.NewString(),
		Data:    messageEventJSON,
	})
}
