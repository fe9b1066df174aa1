package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user with default avatar", func(t *testing.T) {
		user, err := NewUser("new user", "1234@gmail.com", "")
		require.NoError(t, err)

		assert.Equal(t, "new user", user.Username)
		assert.Equal(t, "1234@gmail.com", user.Email)
		assert.Equal(t, DefaultAvatar, user.Avatar)
		assert.True(t, user.ID.IsZero(), "id is assigned by the repository")
	})

	t.Run("explicit avatar is kept", func(t *testing.T) {
		user, err := NewUser("new user", "1234@gmail.com", "https://example.com/me.png")
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/me.png", user.Avatar)
	})

	t.Run("missing username", func(t *testing.T) {
		_, err := NewUser("", "1234@gmail.com", "")
		assert.ErrorIs(t, err, ErrMissingUserData)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := NewUser("new user", "", "")
		assert.ErrorIs(t, err, ErrMissingUserData)
	})

	t.Run("whitespace-only fields are rejected", func(t *testing.T) {
		_, err := NewUser("   ", "1234@gmail.com", "")
		assert.ErrorIs(t, err, ErrMissingUserData)
	})
}
