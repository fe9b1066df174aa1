package messaging

import "github.com/jefner876/codernet-backend-solo/internal/domain"

const (
	EventsQueue     = "chat_events"
	DeadLetterQueue = "dead_letter_queue"
)

type UserEventData struct {
	User domain.User `json:"user"`
}

type MessageEventData struct {
	Message domain.Message `json:"message"`
}
