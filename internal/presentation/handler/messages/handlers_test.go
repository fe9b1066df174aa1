package messages_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jefner876/codernet-backend-solo/internal/domain"
	"github.com/jefner876/codernet-backend-solo/internal/presentation/handler/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockUserRepo struct {
	users map[primitive.ObjectID]domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[primitive.ObjectID]domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = primitive.NewObjectID()
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	all := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	return all, nil
}

func (m *mockUserRepo) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

// mockMessageRepo joins against the user repo the way the Mongo
// aggregation pipeline does.
type mockMessageRepo struct {
	userRepo *mockUserRepo
	messages []domain.Message
	failWith error
}

func (m *mockMessageRepo) Create(_ context.Context, message *domain.Message) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.userRepo.users[message.UserID]; !ok {
		return domain.ErrInvalidUserID
	}
	message.ID = primitive.NewObjectID()
	m.messages = append(m.messages, *message)
	return nil
}

func (m *mockMessageRepo) GetAll(_ context.Context) ([]domain.PopulatedMessage, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.populate(""), nil
}

func (m *mockMessageRepo) GetByRoom(_ context.Context, room string) ([]domain.PopulatedMessage, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.populate(room), nil
}

func (m *mockMessageRepo) populate(room string) []domain.PopulatedMessage {
	populated := []domain.PopulatedMessage{}
	for _, msg := range m.messages {
		if room != "" && msg.Room != room {
			continue
		}
		populated = append(populated, domain.PopulatedMessage{
			ID:        msg.ID,
			Body:      msg.Body,
			Room:      msg.Room,
			User:      m.userRepo.users[msg.UserID],
			CreatedAt: msg.CreatedAt,
		})
	}
	return populated
}

type errorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

func seedUser(t *testing.T, repo *mockUserRepo) domain.User {
	t.Helper()

	user, err := domain.NewUser("new user", "1234@gmail.com", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), user))
	return *user
}

func postMessage(h *messages.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.CreateMessageHandler(rr, req)
	return rr
}

func TestCreateMessageHandler(t *testing.T) {
	t.Run("valid message returns 201 with generated id and timestamp", func(t *testing.T) {
		userRepo := newMockUserRepo()
		msgRepo := &mockMessageRepo{userRepo: userRepo}
		h := messages.NewHandler(msgRepo, userRepo, nil)

		user := seedUser(t, userRepo)

		before := time.Now().UTC()
		rr := postMessage(h, `{"body":"first post","room":"general","user":"`+user.ID.Hex()+`"}`)

		require.Equal(t, http.StatusCreated, rr.Code)

		var res struct {
			NewMessage struct {
				ID        string    `json:"_id"`
				Body      string    `json:"body"`
				Room      string    `json:"room"`
				User      string    `json:"user"`
				CreatedAt time.Time `json:"created_at"`
			} `json:"newMessage"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))

		assert.Equal(t, "first post", res.NewMessage.Body)
		assert.Equal(t, "general", res.NewMessage.Room)
		assert.Equal(t, user.ID.Hex(), res.NewMessage.User)
		assert.True(t, validObjectID(res.NewMessage.ID))
		assert.False(t, res.NewMessage.CreatedAt.Before(before))
	})

	t.Run("unknown property is rejected with 400", func(t *testing.T) {
		userRepo := newMockUserRepo()
		msgRepo := &mockMessageRepo{userRepo: userRepo}
		h := messages.NewHandler(msgRepo, userRepo, nil)

		user := seedUser(t, userRepo)

		rr := postMessage(h, `{"body":"hi","room":"general","user":"`+user.ID.Hex()+`","notafield":"x"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var env errorEnvelope
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
		assert.Equal(t, "property notafield should not exist", env.Message)
		assert.Equal(t, "Bad Request", env.Error)
		assert.Empty(t, msgRepo.messages)
	})

	t.Run("malformed user id returns 400 Invalid User ID", func(t *testing.T) {
		userRepo := newMockUserRepo()
		msgRepo := &mockMessageRepo{userRepo: userRepo}
		h := messages.NewHandler(msgRepo, userRepo, nil)

		rr := postMessage(h, `{"body":"hi","room":"general","user":"notAnId"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var env errorEnvelope
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
		assert.Equal(t, "Invalid User ID", env.Message)
	})

	t.Run("well-formed but unknown user id returns 400 Invalid User ID", func(t *testing.T) {
		userRepo := newMockUserRepo()
		msgRepo := &mockMessageRepo{userRepo: userRepo}
		h := messages.NewHandler(msgRepo, userRepo, nil)

		rr := postMessage(h, `{"body":"hi","room":"general","user":"`+primitive.NewObjectID().Hex()+`"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var env errorEnvelope
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
		assert.Equal(t, "Invalid User ID", env.Message)
	})

	t.Run("missing body names the field", func(t *testing.T) {
		userRepo := newMockUserRepo()
		msgRepo := &mockMessageRepo{userRepo: userRepo}
		h := messages.NewHandler(msgRepo, userRepo, nil)

		user := seedUser(t, userRepo)

		rr := postMessage(h, `{"room":"general","user":"`+user.ID.Hex()+`"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var env errorEnvelope
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
		assert.Equal(t, "body is required", env.Message)
	})

	t.Run("missing user names the field", func(t *testing.T) {
		userRepo := newMockUserRepo()
		msgRepo := &mockMessageRepo{userRepo: userRepo}
		h := messages.NewHandler(msgRepo, userRepo, nil)

		rr := postMessage(h, `{"body":"hi","room":"general"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var env errorEnvelope
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
		assert.Equal(t, "user is required", env.Message)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		userRepo := newMockUserRepo()
		msgRepo := &mockMessageRepo{userRepo: userRepo, failWith: assert.AnError}
		h := messages.NewHandler(msgRepo, userRepo, nil)

		user := seedUser(t, userRepo)

		rr := postMessage(h, `{"body":"hi","room":"general","user":"`+user.ID.Hex()+`"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetMessagesHandler(t *testing.T) {
	userRepo := newMockUserRepo()
	msgRepo := &mockMessageRepo{userRepo: userRepo}
	h := messages.NewHandler(msgRepo, userRepo, nil)

	user := seedUser(t, userRepo)

	rr := postMessage(h, `{"body":"hello","room":"general","user":"`+user.ID.Hex()+`"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rr = httptest.NewRecorder()
	h.GetMessagesHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Messages []struct {
			Body string      `json:"body"`
			Room string      `json:"room"`
			User domain.User `json:"user"`
		} `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "hello", res.Messages[0].Body)
	assert.Equal(t, user.Username, res.Messages[0].User.Username)
	assert.Equal(t, user.Email, res.Messages[0].User.Email)
}

func TestGetMessagesByRoomHandler(t *testing.T) {
	userRepo := newMockUserRepo()
	msgRepo := &mockMessageRepo{userRepo: userRepo}
	h := messages.NewHandler(msgRepo, userRepo, nil)

	user := seedUser(t, userRepo)

	for _, m := range []struct{ body, room string }{
		{"one", "general"},
		{"two", "random"},
		{"three", "general"},
	} {
		rr := postMessage(h, `{"body":"`+m.body+`","room":"`+m.room+`","user":"`+user.ID.Hex()+`"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := getRoom(h, "general")
	require.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Messages []struct {
			Body string `json:"body"`
			Room string `json:"room"`
		} `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "one", res.Messages[0].Body)
	assert.Equal(t, "three", res.Messages[1].Body)

	rr = getRoom(h, "empty-room")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"messages":[]}`, rr.Body.String())
}

func getRoom(h *messages.Handler, room string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/messages/"+room, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("room", room)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	h.GetMessagesByRoomHandler(rr, req)
	return rr
}

func validObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
