package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidUserID covers both a malformed user id and one that resolves
	// to no user. The two cases are deliberately indistinguishable to clients.
	ErrInvalidUserID = errors.New("Invalid User ID")

	ErrMissingMessageData = errors.New("Missing required data")
)

// Message is the stored form of a chat message; User holds the author's id.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Body      string             `bson:"body" json:"body"`
	Room      string             `bson:"room" json:"room"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// PopulatedMessage is the read form, with the author embedded in place of
// the id.
type PopulatedMessage struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Body      string             `bson:"body" json:"body"`
	Room      string             `bson:"room" json:"room"`
	User      User               `bson:"user" json:"user"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type MessageRepository interface {
	// Create persists the message after re-checking that the referenced user
	// exists; it fails with ErrInvalidUserID otherwise.
	Create(ctx context.Context, message *Message) error
	GetAll(ctx context.Context) ([]PopulatedMessage, error)
	GetByRoom(ctx context.Context, room string) ([]PopulatedMessage, error)
}

// NewMessage builds an unsaved message stamped with the current time.
func NewMessage(body, room string, userID primitive.ObjectID) (*Message, error) {
	if body == "" || room == "" {
		return nil, ErrMissingMessageData
	}

	return &Message{
		Body:      body,
		Room:      room,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}, nil
}
