package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	t.Run("all properties allowed", func(t *testing.T) {
		payload := []byte(`{"body":"Hello!","room":"Python","user":"65a1f0c2b7e4d3a2c1b0f9e8"}`)

		err := Fields(payload, "body", "room", "user")
		assert.NoError(t, err)
	})

	t.Run("single unknown property", func(t *testing.T) {
		payload := []byte(`{"body":"Hello!","room":"Python","user":"65a1f0c2b7e4d3a2c1b0f9e8","notafield":"Zoink!"}`)

		err := Fields(payload, "body", "room", "user")
		require.Error(t, err)
		assert.Equal(t, "property notafield should not exist", err.Error())
	})

	t.Run("multiple unknown properties are all reported", func(t *testing.T) {
		payload := []byte(`{"body":"Hello!","aaa":1,"bbb":2}`)

		err := Fields(payload, "body", "room", "user")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "property aaa should not exist")
		assert.Contains(t, err.Error(), "property bbb should not exist")
	})

	t.Run("subset of allowed properties", func(t *testing.T) {
		payload := []byte(`{"body":"Hello!"}`)

		err := Fields(payload, "body", "room", "user")
		assert.NoError(t, err)
	})

	t.Run("non-object payload", func(t *testing.T) {
		err := Fields([]byte(`[1,2,3]`), "body")
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		err := Fields([]byte(`{"body":`), "body")
		assert.Error(t, err)
	})
}

func TestStruct(t *testing.T) {
	type createMessage struct {
		Body string `json:"body" validate:"required"`
		Room string `json:"room" validate:"required"`
		User string `json:"user" validate:"required"`
	}

	t.Run("all fields present", func(t *testing.T) {
		err := Struct(createMessage{Body: "Hello!", Room: "Python", User: "abc"})
		assert.NoError(t, err)
	})

	t.Run("missing field is named by its json tag", func(t *testing.T) {
		err := Struct(createMessage{Room: "Python", User: "abc"})
		require.Error(t, err)
		assert.Equal(t, "body is required", err.Error())
	})

	t.Run("first failure wins", func(t *testing.T) {
		err := Struct(createMessage{})
		require.Error(t, err)
		assert.Equal(t, "body is required", err.Error())
	})
}

func TestObjectID(t *testing.T) {
	assert.True(t, ObjectID("65a1f0c2b7e4d3a2c1b0f9e8"))

	assert.False(t, ObjectID("notAnId"))
	assert.False(t, ObjectID(""))
	assert.False(t, ObjectID("65a1f0c2b7e4d3a2c1b0f9e")) // 23 chars
	assert.False(t, ObjectID("65a1f0c2b7e4d3a2c1b0f9zz"))
}
