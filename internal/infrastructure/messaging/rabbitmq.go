package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jefner876/codernet-backend-solo/internal/infrastructure/contracts"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ChatExchange       = "chat"
	DeadLetterExchange = "dlx"
)

type RabbitMQ struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

func NewRabbitMQ(uri string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %v", err)
	}

	rmq := &RabbitMQ{
		conn:    conn,
		Channel: ch,
	}

	if err := rmq.setup(); err != nil {
		rmq.Close()
		return nil, err
	}

	return rmq, nil
}

func (r *RabbitMQ) Close() {
	if r.conn != nil {
		r.conn.Close()
	}
	if r.Channel != nil {
		r.Channel.Close()
	}
}

func (r *RabbitMQ) setup() error {
	if err := r.Channel.ExchangeDeclare(
		ChatExchange, "topic", true, false, false, false, nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %v", ChatExchange, err)
	}

	if err := r.Channel.ExchangeDeclare(
		DeadLetterExchange, "fanout", true, false, false, false, nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %v", DeadLetterExchange, err)
	}

	if err := r.declareAndBindQueue(EventsQueue, []string{
		contracts.EventUserCreated,
		contracts.EventMessageCreated,
	}, ChatExchange); err != nil {
		return err
	}

	if _, err := r.Channel.QueueDeclare(
		DeadLetterQueue, true, false, false, false, nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue %s: %v", DeadLetterQueue, err)
	}

	return r.Channel.QueueBind(DeadLetterQueue, "", DeadLetterExchange, false, nil)
}

func (r *RabbitMQ) declareAndBindQueue(queueName string, messageTypes []string, exchange string) error {
	args := amqp.Table{
		"x-dead-letter-exchange": DeadLetterExchange,
	}

	q, err := r.Channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		args,      // arguments with DLX config
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %v", queueName, err)
	}

	for _, msg := range messageTypes {
		if err := r.Channel.QueueBind(
			q.Name,   // queue name
			msg,      // routing key
			exchange, // exchange
			false,
			nil,
		); err != nil {
			return fmt.Errorf("failed to bind queue to %s: %v", queueName, err)
		}
	}

	return nil
}

func (r *RabbitMQ) PublishMessage(ctx context.Context, routingKey string, msg contracts.AmqpMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return r.Channel.PublishWithContext(ctx,
		ChatExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (r *RabbitMQ) ConsumeMessages(queueName string, handler func(ctx context.Context, msg amqp.Delivery) error) error {
	deliveries, err := r.Channel.Consume(
		queueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume from %s: %v", queueName, err)
	}

	for d := range deliveries {
		if err := handler(context.Background(), d); err != nil {
			log.Printf("Failed to handle delivery: %v", err)
			// Route the poison message to the dead letter queue
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}

	return nil
}
