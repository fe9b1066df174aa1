package contracts

// AmqpMessage is the message structure for AMQP.
type AmqpMessage struct {
	EventID string `json:"eventId"`
	Data    []byte `json:"data"`
}

// Routing keys - using consistent event/command patterns
const (
	EventUserCreated    = "user.created"
	EventMessageCreated = "message.created"
)
