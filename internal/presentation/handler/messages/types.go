package messages

import "github.com/jefner876/codernet-backend-solo/internal/domain"

// createMessageRequest represents the request to post a message to a room.
// These three properties are the only ones a payload may carry.
type createMessageRequest struct {
	Body string `json:"body" validate:"required" example:"Hello!"`                  // Message text
	Room string `json:"room" validate:"required" example:"Python"`                  // Room label the message belongs to
	User string `json:"user" validate:"required" example:"65a1f0c2b7e4d3a2c1b0f9e8"` // ObjectID of an existing user
}

var allowedMessageFields = []string{"body", "room", "user"}

// createMessageResponse represents the response after posting a message
type createMessageResponse struct {
	NewMessage domain.Message `json:"newMessage"` // The created message; user is the author's id
}

// listMessagesResponse represents a page-less listing of messages with the
// author embedded in each entry
type listMessagesResponse struct {
	Messages []domain.PopulatedMessage `json:"messages"`
}
