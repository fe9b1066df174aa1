package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewMessage(t *testing.T) {
	authorID := primitive.NewObjectID()

	t.Run("valid message", func(t *testing.T) {
		before := time.Now().UTC()
		message, err := NewMessage("Hello!", "Python", authorID)
		require.NoError(t, err)

		assert.Equal(t, "Hello!", message.Body)
		assert.Equal(t, "Python", message.Room)
		assert.Equal(t, authorID, message.UserID)
		assert.True(t, message.ID.IsZero(), "id is assigned by the repository")

		assert.False(t, message.CreatedAt.Before(before))
		assert.False(t, message.CreatedAt.After(time.Now().UTC()))
	})

	t.Run("missing body", func(t *testing.T) {
		_, err := NewMessage("", "Python", authorID)
		assert.ErrorIs(t, err, ErrMissingMessageData)
	})

	t.Run("missing room", func(t *testing.T) {
		_, err := NewMessage("Hello!", "", authorID)
		assert.ErrorIs(t, err, ErrMissingMessageData)
	})
}
